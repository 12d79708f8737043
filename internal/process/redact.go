package process

// redactedValue replaces secret argument values.
const redactedValue = "***"

// secretFlags are flags whose following argument is a secret: vmrun's guest
// password and VM encryption password.
var secretFlags = map[string]bool{
	"-gp": true,
	"-vp": true,
}

// Redact returns a copy of args with the value following each secret flag
// replaced by "***". The input slice is not modified.
func Redact(args []string) []string {
	if args == nil {
		return nil
	}
	out := make([]string, len(args))
	copy(out, args)
	for i := 0; i < len(out)-1; i++ {
		if secretFlags[out[i]] {
			out[i+1] = redactedValue
			i++
		}
	}
	return out
}
