package main

import "github.com/dalemyers/libtvdb/cmd"

func main() {
	cmd.Execute()
}
