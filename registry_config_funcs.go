package argspec

import (
	"github.com/napalu/argspec/i18n"
	"github.com/rs/zerolog"
)

// WithLogger sets the logger receiving resolution traces at debug level
func WithLogger(logger zerolog.Logger) ConfigureRegistryFunc {
	return func(registry *Registry) {
		registry.logger = logger
	}
}

// WithMessageProvider sets the provider used by FormatError
func WithMessageProvider(provider i18n.MessageProvider) ConfigureRegistryFunc {
	return func(registry *Registry) {
		registry.provider = provider
	}
}

// WithArgs adds arguments when the registry is created. Registration errors surface from Compile.
func WithArgs(args ...*Argument) ConfigureRegistryFunc {
	return func(registry *Registry) {
		for _, a := range args {
			if err := registry.AddArg(a); err != nil && registry.pendingErr == nil {
				registry.pendingErr = err
			}
		}
	}
}

// WithGroupDefs adds groups when the registry is created. Registration errors surface from Compile.
func WithGroupDefs(groups ...*Group) ConfigureRegistryFunc {
	return func(registry *Registry) {
		for _, g := range groups {
			if err := registry.AddGroup(g); err != nil && registry.pendingErr == nil {
				registry.pendingErr = err
			}
		}
	}
}
