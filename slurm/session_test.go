package slurm

// MockSession allows to script responses from the login node
type MockSession struct {
	MockRunCommand func(cmd string) (string, error)
}

// RunCommand to mock a command ran over ssh
func (s *MockSession) RunCommand(cmd string) (string, error) {
	if s.MockRunCommand != nil {
		return s.MockRunCommand(cmd)
	}
	return "", nil
}
