package main

import (
	"github.com/ggowtam/nutrition-tracker/config"
	"github.com/ggowtam/nutrition-tracker/routes"
	"github.com/ggowtam/nutrition-tracker/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
