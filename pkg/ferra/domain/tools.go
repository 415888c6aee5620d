package domain

// Miri interprets the code in Miri to detect certain cases of undefined behavior.
func (s *CommandService) Miri(args Args) (string, error) {
	rawCode, err := s.resolveCode(args)
	if err != nil {
		return "", err
	}
	code, _ := MaybeWrap(rawCode, ResultHandlingDiscard)
	flags, diagnostics := ParseFlags(args.Params)

	result, err := s.playground.Miri(code, flags.Edition)
	if err != nil {
		return "", err
	}
	result.Stderr = miriSpec.Apply(result.Stderr)

	return s.buildReply(result, code, flags, diagnostics)
}

// ExpandMacros expands macros to their raw desugared form. The expanded code is prettified with rustfmt when
// possible; a rustfmt failure here is only logged, since the expansion itself already succeeded.
func (s *CommandService) ExpandMacros(args Args) (string, error) {
	rawCode, err := s.resolveCode(args)
	if err != nil {
		return "", err
	}
	code, wasWrapped := MaybeWrap(rawCode, ResultHandlingNone)
	flags, diagnostics := ParseFlags(args.Params)

	result, err := s.playground.ExpandMacros(code, flags.Edition)
	if err != nil {
		return "", err
	}
	result.Stderr = expansionSpec.Apply(result.Stderr)

	if result.Success {
		formatted, err := s.formatter.Format(result.Stdout, flags.Edition)
		switch {
		case err != nil:
			s.logger.Log("couldn't run rustfmt: " + err.Error())
		case !formatted.Success:
			s.logger.Log("rustfmt failed on code which passed through macro expansion: " + formatted.Stderr)
		default:
			result.Stdout = formatted.Stdout
		}
	}
	if wasWrapped {
		result.Stdout = StripMainBoilerplate(result.Stdout)
	}

	return s.buildReply(result, code, flags, diagnostics)
}

// Clippy lints the code with Clippy.
func (s *CommandService) Clippy(args Args) (string, error) {
	rawCode, err := s.resolveCode(args)
	if err != nil {
		return "", err
	}
	code, _ := MaybeWrap(rawCode, ResultHandlingDiscard)
	flags, diagnostics := ParseFlags(args.Params)

	result, err := s.playground.Clippy(code, flags.Edition, CrateTypeForCode(code))
	if err != nil {
		return "", err
	}
	result.Stderr = clippySpec.Apply(result.Stderr)

	return s.buildReply(result, code, flags, diagnostics)
}

// Fmt formats the code with the local rustfmt. Unlike in ExpandMacros, here rustfmt is the tool itself,
// so its unavailability fails the command.
func (s *CommandService) Fmt(args Args) (string, error) {
	rawCode, err := s.resolveCode(args)
	if err != nil {
		return "", err
	}
	code, wasWrapped := MaybeWrap(rawCode, ResultHandlingNone)
	flags, diagnostics := ParseFlags(args.Params)

	result, err := s.formatter.Format(code, flags.Edition)
	if err != nil {
		return "", err
	}
	if wasWrapped {
		result.Stdout = StripMainBoilerplate(result.Stdout)
	}

	return s.buildReply(result, code, flags, diagnostics)
}
