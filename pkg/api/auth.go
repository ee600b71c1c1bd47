package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль (plaintext, хешируется на сервере)
	Email    string `json:"email"`    // email пользователя
}

// RegisterResponse представляет ответ на успешную регистрацию
type RegisterResponse struct {
	Username string `json:"username"` // зарегистрированный username
	Message  string `json:"message"`  // сообщение об успешной регистрации
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль (plaintext)
}

// LoginResponse представляет ответ на успешный логин
type LoginResponse struct {
	AccessToken string          `json:"access_token"` // JWT access token
	ExpiresIn   int64           `json:"expires_in"`   // время жизни токена в секундах
	Profile     ProfileResponse `json:"profile"`      // профиль сессии после гидратации
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
