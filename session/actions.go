package session

import (
	"context"

	"github.com/go-atem/atemkit/command"
	"github.com/go-atem/atemkit/protocol"
)

// withBundle runs fn as a one-setter bundle: BundleBegin, fn, BundleEnd.
// This is the path every stateless action and every standalone (as
// opposed to explicitly batched) setter call goes through.
func (s *Session) withBundle(ctx context.Context, fn func(b *command.Bundler) error) error {
	if err := s.BundleBegin(ctx); err != nil {
		return err
	}
	if err := fn(s.bundler); err != nil {
		s.bundleMu.Unlock()
		return err
	}
	return s.BundleEnd()
}

// Cut performs an immediate program/preview swap on the given mix-effect.
func (s *Session) Cut(ctx context.Context, mixEffect uint8) error {
	return s.withBundle(ctx, func(b *command.Bundler) error {
		return command.Cut(b, mixEffect)
	})
}

// Auto starts the configured transition on the given mix-effect.
func (s *Session) Auto(ctx context.Context, mixEffect uint8) error {
	return s.withBundle(ctx, func(b *command.Bundler) error {
		return command.Auto(b, mixEffect)
	})
}

// DSKAuto starts the given downstream keyer's auto transition.
func (s *Session) DSKAuto(ctx context.Context, dsk uint8) error {
	return s.withBundle(ctx, func(b *command.Bundler) error {
		return command.DSKAuto(b, dsk)
	})
}

// FadeToBlackAuto starts the fade-to-black transition on the given
// mix-effect.
func (s *Session) FadeToBlackAuto(ctx context.Context, mixEffect uint8) error {
	return s.withBundle(ctx, func(b *command.Bundler) error {
		return command.FadeToBlackAuto(b, mixEffect)
	})
}

// MacroRecordStop stops whichever macro is currently recording.
func (s *Session) MacroRecordStop(ctx context.Context, macro uint16) error {
	return s.withBundle(ctx, func(b *command.Bundler) error {
		return command.SetMacroAction(b, macro, uint8(protocol.MacroActionStopRecording))
	})
}

// MacroRun starts playback of the given macro.
func (s *Session) MacroRun(ctx context.Context, macro uint16) error {
	return s.withBundle(ctx, func(b *command.Bundler) error {
		return command.SetMacroAction(b, macro, uint8(protocol.MacroActionRun))
	})
}
