// Package vault is the credential database behind the demo CLI.
//
// A vault is a single SQLite file. Its metadata table holds an argon2id salt
// and a verifier of the derived master key; every entry is stored as two
// AES-GCM sealed JSON blobs, a short overview (title, username, url) used for
// lookup and search, and the full credential.
//
// Typical use:
//
//	v := vault.New(map[vault.InputMethod]vault.PasswordPrompter{
//		vault.InputConsole: &prompt.Console{...},
//		vault.InputGUI:     &prompt.Dialog{},
//	}, autotype.Xdotool{}, logger)
//
//	s, err := v.Open(ctx, "~/passwords.db", vault.InputConsole)
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//
//	c, err := s.Lookup(ctx, "My Website")
//
// Sessions are not safe for concurrent use.
package vault
