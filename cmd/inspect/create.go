package main

// keychainCreateArgs maps the entered password to keychain-creation
// arguments. An empty entry defers to the framework's own password dialog
// instead of protecting the keychain with the empty string.
func keychainCreateArgs(entered []byte) (password []byte, promptUser bool) {
	if len(entered) == 0 {
		return nil, true
	}
	return entered, false
}
