package main

import "github.com/blockchaincommons/zewif-migrate/cmd"

func main() {
	cmd.Execute()
}
