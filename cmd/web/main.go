package main

import "mccare_backend/internal/app"

func main() {
	app.Run()
}
