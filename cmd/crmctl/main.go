package main

import "homeservices_crm/cmd/crmctl/commands"

func main() {
	commands.Execute()
}
