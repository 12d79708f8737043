package vmrun

// Credentials are a guest OS account, passed to vmrun as -gu/-gp on every
// guest operation. They are not validated or stored.
type Credentials struct {
	Username string
	Password string
}

// String returns the username with the password masked, so credentials can
// be logged or printed with %v.
func (c Credentials) String() string {
	return c.Username + ":***"
}

// args returns the authentication flags, which vmrun requires before the
// subcommand.
func (c Credentials) args() []string {
	return []string{"-gu", c.Username, "-gp", c.Password}
}

// GoString masks the password for %#v as well.
func (c Credentials) GoString() string {
	return `vmrun.Credentials{Username:"` + c.Username + `", Password:"***"}`
}
