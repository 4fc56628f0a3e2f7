package main

import (
	"os"

	"codecraft/backend/internal/app"
)

// @title           CodeCraft API
// @version         1.0
// @description     Generates small projects from prompts and revises them through chat.
// @BasePath        /api
func main() {
	os.Exit(app.Run())
}
