package validation

// Registry holds the schemas shared read-only across all requests. It
// is built once at startup and passed to the handlers explicitly.
type Registry struct {
	User   Schema
	SignIn Schema
	Card   Schema
}

func NewRegistry() *Registry {
	return &Registry{
		User: NewSchema(
			Field("username", NotEmpty(), Length(2, 20)),
			Field("password", NotEmpty(), MinLength(4)),
			Field("mail", NotEmpty(), Email()),
		),
		SignIn: NewSchema(
			Field("login", NotEmpty()),
			Field("password", NotEmpty(), MinLength(4)),
		),
		Card: NewSchema(
			Field("title", NotEmpty()),
			Field("description", NotEmpty()),
		),
	}
}
