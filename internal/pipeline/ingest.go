/*
DESCRIPTION
  ingest.go is the UDP/RTP receive loop shared by both Decoder
  implementations: it depayloads RTP and hands each packet's payload
  to a container-specific demuxer.

LICENSE
  Copyright (C) 2026 the Hawkeye Authors.

  This is free software: you can redistribute it and/or modify it
  under the terms of the GNU General Public License as published by
  the Free Software Foundation, either version 3 of the License, or
  (at your option) any later version.

  This is distributed in the hope that it will be useful, but WITHOUT
  ANY WARRANTY; without even the implied warranty of MERCHANTABILITY
  or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public
  License for more details.

  You should have received a copy of the GNU General Public License
  in gpl.txt. If not, see http://www.gnu.org/licenses/.
*/

package pipeline

import (
	"context"
	"fmt"
	"net"

	"github.com/ausocean/utils/logging"
	"github.com/pion/rtp"
)

const rtpReadBufferSize = 1500 // one Ethernet MTU; RTP over UDP never fragments in this deployment.

// rtpSource listens for RTP packets on a UDP port and hands each
// packet's depacketized payload to onPayload, until ctx is cancelled or
// a fatal socket error occurs.
type rtpSource struct {
	conn *net.UDPConn
	log  logging.Logger
}

func newRTPSource(port int, log logging.Logger) (*rtpSource, error) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{Port: port})
	if err != nil {
		return nil, fmt.Errorf("pipeline: listen udp :%d: %w", port, err)
	}
	return &rtpSource{conn: conn, log: log}, nil
}

// run blocks, delivering payloads to onPayload, until ctx is done or
// the socket returns a fatal error (also reported via errCh).
func (s *rtpSource) run(ctx context.Context, onPayload func(payload []byte), errCh chan<- error) {
	go func() {
		<-ctx.Done()
		s.conn.Close()
	}()

	buf := make([]byte, rtpReadBufferSize)
	var pkt rtp.Packet
	for {
		n, err := s.conn.Read(buf)
		if err != nil {
			select {
			case <-ctx.Done():
				return
			default:
			}
			errCh <- fmt.Errorf("pipeline: udp read: %w", err)
			return
		}
		if err := pkt.Unmarshal(buf[:n]); err != nil {
			s.log.Warning("could not unmarshal rtp packet", "error", err)
			continue
		}
		onPayload(pkt.Payload)
	}
}

func (s *rtpSource) Close() error {
	return s.conn.Close()
}
