package main

// @title           Armazém API
// @version         1.0
// @description     API do painel de armazenagem: ruas, endereços, clientes, take-ups, pacotes, endereçamento e expedição

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
