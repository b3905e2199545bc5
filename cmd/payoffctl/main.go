// Command payoffctl runs debt payoff simulations from a TOML file.
package main

func main() {
	Execute()
}
