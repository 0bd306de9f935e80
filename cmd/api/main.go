package main

import "petcare-marketplace/internal/cli"

// @title Pet Care Marketplace API
// @version 1.0
// @description Adopción de mascotas, cuidadores, reservas y reseñas.
// @BasePath /
func main() {
	cli.Execute()
}
