// Command dynctl exercises the dynarray container from the command line.
package main

func main() {
	execute()
}
