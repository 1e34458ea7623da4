package main

// @title           Centsible API
// @version         1.0
// @description     Personal finance tracking: transactions, dashboard analytics and piggybank savings goals
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token
func main() {
	Execute()
}
