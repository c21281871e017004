package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/campusgg/events-api/cmd/app"
)

// @title           campusgg events API
// @version         1.0
// @description     Event pages, attendee lists and RSVPs.
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @BasePath  /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
