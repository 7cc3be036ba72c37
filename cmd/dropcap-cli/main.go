// Command dropcap-cli inspects and renders the Drop Cap Text module.
package main

func main() {
	Execute()
}
