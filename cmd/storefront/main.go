package main

import "github.com/storecraft/storefront/internal/runtime"

func main() {
	runtime.New().Run()
}
