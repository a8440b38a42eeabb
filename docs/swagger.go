package docs

// @title           Casino Backend API
// @version         1.0
// @description     User account service for the casino platform: registration, login, bearer-token validation and profile retrieval backed by JWT authentication.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
