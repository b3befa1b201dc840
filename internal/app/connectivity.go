package app

import (
	"net"
	"time"

	tea "charm.land/bubbletea/v2"
)

// The probe dials the default provider's API endpoint. Any TCP-level
// success counts as online; request failures are handled per exchange.
const (
	probeAddr     = "generativelanguage.googleapis.com:443"
	probeTimeout  = 3 * time.Second
	probeInterval = 15 * time.Second
)

// connectivityMsg reports the result of a connectivity probe.
type connectivityMsg struct {
	Online bool
}

// probeConnectivity checks reachability once, off the event loop.
func probeConnectivity() tea.Cmd {
	return func() tea.Msg {
		conn, err := net.DialTimeout("tcp", probeAddr, probeTimeout)
		if err != nil {
			return connectivityMsg{Online: false}
		}
		conn.Close()
		return connectivityMsg{Online: true}
	}
}

// scheduleProbe queues the next probe after the polling interval.
func scheduleProbe() tea.Cmd {
	return tea.Tick(probeInterval, func(time.Time) tea.Msg {
		return probeConnectivity()()
	})
}
