package main

import (
	"github.com/CPU-commits/Intranet_BSubjects/feed/server"
)

// @title          Subjects Feed API
// @version        1.0
// @description    API Server For feed requests of subjects service
// @termsOfService http://swagger.io/terms/

// @contact.name  API Support
// @contact.url   http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url  http://www.apache.org/licenses/LICENSE-2.0.html

// @tag.name        subjects
// @tag.description Service of subjects

// @host     localhost:8081
// @BasePath /api/subjects

// @accept  json
// @produce json

// @schemes http https
func main() {
	server.Init()
}
