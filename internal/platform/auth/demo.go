package auth

// DemoUsers maps each seeded console login to its role.
var DemoUsers = []struct {
	Username string
	Role     Role
}{
	{"admin", RoleAdmin},
	{"doctor", RoleDoctor},
	{"nurse", RoleNurse},
	{"patient", RolePatient},
}

// SeedDemoUsers adds the demo logins, all sharing password. Usernames that
// already exist are left alone.
func (s *Store) SeedDemoUsers(password string) error {
	for _, u := range DemoUsers {
		if _, ok := s.users[u.Username]; ok {
			continue
		}
		if err := s.AddUser(u.Username, password, u.Role); err != nil {
			return err
		}
	}
	return nil
}
