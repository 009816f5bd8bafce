package forms

// Signup mirrors the registration form. Name is a hidden field and may be empty.
type Signup struct {
	Name     string `form:"name" validate:"max=80"`
	Email    string `form:"email" validate:"required,min=4,max=40,email"`
	Password string `form:"password" validate:"required,min=4,max=20,maxbytes=72"`
}

func (f *Signup) Validate() Result {
	trim(&f.Name, &f.Email)
	return check(f)
}

type Login struct {
	Email    string `form:"email" validate:"required,min=4,max=40,email"`
	Password string `form:"password" validate:"required,min=4,max=20,maxbytes=72"`
}

func (f *Login) Validate() Result {
	trim(&f.Email)
	return check(f)
}
