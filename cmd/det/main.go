package main

import "github.com/datazip-inc/det"

func main() {
	det.Run()
}
