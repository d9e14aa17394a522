package auth

// SweepExpired runs one expiry pass without waiting for the ticker.
func (m *Manager) SweepExpired() {
	m.sweepExpired()
}
