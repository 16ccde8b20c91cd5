package main

import "github.com/CPU-commits/Intranet_BSubjects/query/server"

// @title          Subjects API
// @version        1.0
// @description    API Server Subjects service
// @termsOfService http://swagger.io/terms/

// @contact.name  API Support
// @contact.url   http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url  http://www.apache.org/licenses/LICENSE-2.0.html

// @tag.name        subjects
// @tag.description Service of subjects

// @host     localhost:8080
// @BasePath /api/subjects

// @accept  json
// @produce json
// @produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @produce application/pdf

// @schemes http https
func main() {
	server.Init()
}
