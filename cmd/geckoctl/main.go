// Command geckoctl is a demonstration client for the Gecko protocol
// core: it opens a UDP socket, broadcasts a HELLO discovery frame, sends
// a VERSION request, and dispatches whatever HELLO/PING/VERSION/CHANNEL
// frames come back. It sends no PING or CHANNEL request of its own. It
// exists to exercise the core against a real transport —
// it is not part of the core's public contract.
package main

import (
	"flag"
	"log/slog"
	"net"
	"os"
	"time"

	"github.com/geckolib/geckoproto"
	"github.com/geckolib/geckoproto/pkg/channel"
	"github.com/geckolib/geckoproto/pkg/hello"
	"github.com/geckolib/geckoproto/pkg/ping"
	"github.com/geckolib/geckoproto/pkg/version"
)

const defaultPort = 10022

func main() {
	addr := flag.String("addr", "255.255.255.255", "broadcast address to discover devices on")
	port := flag.Int("port", defaultPort, "UDP port the device listens on")
	timeout := flag.Duration("timeout", 3*time.Second, "how long to wait for a response")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil)).With("service", "geckoctl")

	conn, err := net.ListenUDP("udp", &net.UDPAddr{Port: 0})
	if err != nil {
		logger.Error("failed to open socket", "err", err)
		os.Exit(1)
	}
	defer conn.Close()

	remote := &net.UDPAddr{IP: net.ParseIP(*addr), Port: *port}

	parms := gecko.ConnectionParms{SrcID: []byte("geckoctl"), DstID: []byte("spa")}
	dispatcher := gecko.NewDispatcher(logger)

	broadcast := hello.Broadcast()
	logger.Info("broadcasting discovery", "addr", remote.String())
	if _, err := conn.WriteToUDP(broadcast.SendBytes(), remote); err != nil {
		logger.Error("failed to send HELLO broadcast", "err", err)
		os.Exit(1)
	}

	helloHandler := hello.New(parms)
	pingHandler := ping.New(parms)
	versionHandler := version.New(parms)
	channelHandler := channel.New(parms)

	dispatcher.Register(helloHandler)
	dispatcher.Register(pingHandler)
	dispatcher.Register(versionHandler)
	dispatcher.Register(channelHandler)

	versionRequest := version.Request(0x01, parms)
	logger.Info("requesting firmware version", "addr", remote.String())
	if _, err := conn.WriteToUDP(versionRequest.SendBytes(), remote); err != nil {
		logger.Error("failed to send version request", "err", err)
		os.Exit(1)
	}

	_ = conn.SetReadDeadline(time.Now().Add(*timeout))

	buf := make([]byte, 2048)
	for {
		n, from, err := conn.ReadFromUDP(buf)
		if err != nil {
			logger.Warn("read loop ending", "err", err)
			return
		}

		payload := buf[:n]
		if gecko.IsEnvelope(payload) {
			_, _, inner, ok := gecko.DecodeEnvelope(payload)
			if !ok {
				logger.Warn("dropping malformed envelope", "from", from.String())
				continue
			}
			payload = inner
		}

		h, err := dispatcher.Dispatch(payload, parms, from.String())
		if err != nil {
			logger.Warn("dispatch failed", "err", err, "from", from.String())
			continue
		}
		logger.Info("handled frame", "handler", h, "from", from.String())
	}
}
