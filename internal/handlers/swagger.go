package handlers

// @title PC Build Advisor API
// @version 1.0
// @description Generates PC build recommendations with the Gemini API

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api

// @tag.name builds
// @tag.description Build recommendation operations
