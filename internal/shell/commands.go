package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-lightpack/models"
)

var errUsage = errors.New("usage")

type command struct {
	name  string
	usage string
	help  string
	run   func(ctx context.Context, s *Shell, arg string) error
}

var commands = []command{
	{name: "connect", usage: "connect [api key]", help: "open the device session", run: runConnect},
	{name: "profiles", usage: "profiles", help: "list profiles", run: runProfiles},
	{name: "profile", usage: "profile [name]", help: "show or set the active profile", run: runProfile},
	{name: "status", usage: "status", help: "show the device status", run: runStatus},
	{name: "on", usage: "on", help: "turn the lights on", run: runOn},
	{name: "off", usage: "off", help: "turn the lights off", run: runOff},
	{name: "brightness", usage: "brightness <0..100>", help: "set brightness", run: runBrightness},
	{name: "apistatus", usage: "apistatus", help: "show whether the API is idle", run: runAPIStatus},
	{name: "state", usage: "state", help: "show the last known state", run: runState},
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func runConnect(ctx context.Context, s *Shell, arg string) error {
	if err := s.light.Connect(ctx, arg); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "connected")
	return nil
}

func runProfiles(ctx context.Context, s *Shell, _ string) error {
	profiles, err := s.light.GetProfiles(ctx)
	if err != nil {
		return err
	}

	active := s.light.State(ctx).Profile
	for _, p := range profiles {
		marker := " "
		if p == active && p != "" {
			marker = "*"
		}
		fmt.Fprintf(s.out, "%s %q\n", marker, p)
	}
	return nil
}

func runProfile(ctx context.Context, s *Shell, arg string) error {
	if arg != "" {
		if err := s.light.SetProfile(ctx, arg); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "profile set to %q\n", arg)
		return nil
	}

	profile, err := s.light.GetProfile(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, profile)
	return nil
}

func runStatus(ctx context.Context, s *Shell, _ string) error {
	status, err := s.light.GetStatus(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, status)
	return nil
}

func runOn(ctx context.Context, s *Shell, _ string) error {
	return setStatus(ctx, s, true)
}

func runOff(ctx context.Context, s *Shell, _ string) error {
	return setStatus(ctx, s, false)
}

func setStatus(ctx context.Context, s *Shell, on bool) error {
	if err := s.light.SetStatus(ctx, on); err != nil {
		return err
	}
	if on {
		fmt.Fprintln(s.out, models.StatusOn)
	} else {
		fmt.Fprintln(s.out, models.StatusOff)
	}
	return nil
}

func runBrightness(ctx context.Context, s *Shell, arg string) error {
	level, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("%w: brightness <0..100>", errUsage)
	}

	if err = s.light.SetBrightness(ctx, level); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "brightness set to %d\n", level)
	return nil
}

func runAPIStatus(ctx context.Context, s *Shell, _ string) error {
	idle, err := s.light.GetStatusAPI(ctx)
	if err != nil {
		return err
	}
	if idle {
		fmt.Fprintln(s.out, "idle")
	} else {
		fmt.Fprintln(s.out, "busy")
	}
	return nil
}

func runState(ctx context.Context, s *Shell, _ string) error {
	state := s.light.State(ctx)

	var b strings.Builder
	fmt.Fprintf(&b, "connected:  %t\n", state.Connected)
	fmt.Fprintf(&b, "status:     %s\n", state.Status)
	fmt.Fprintf(&b, "profile:    %s\n", state.Profile)
	if state.Brightness == models.UnknownBrightness {
		b.WriteString("brightness: unknown\n")
	} else {
		fmt.Fprintf(&b, "brightness: %d\n", state.Brightness)
	}

	_, err := fmt.Fprint(s.out, b.String())
	return err
}
