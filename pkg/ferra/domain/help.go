package domain

import "fmt"

// genericHelp builds the static help text all commands share the shape of. `full` includes the mode and
// channel arguments, which only the execution-backed commands understand. The zero-width spaces keep the
// nested backticks of the example from closing the surrounding code block on platforms which render markdown.
func genericHelp(name, description string, full bool, exampleCode string) string {
	reply := description + ". All code is executed on https://play.rust-lang.org.\n"
	extraArgs := ""
	if full {
		extraArgs = "mode={} channel={} "
	}
	reply += fmt.Sprintf("```?%s %sedition={} ``\u200b`%s``\u200b` ```\n", name, extraArgs, exampleCode)
	reply += "Optional arguments:\n"
	if full {
		reply += "    \tmode: debug, release (default: debug)\n"
		reply += "    \tchannel: stable, beta, nightly (default: nightly)\n"
	}
	reply += "    \tedition: 2015, 2018 (default: 2018)\n"
	return reply
}

var (
	playHelp   = genericHelp("play", "Compile and run Rust code", true, "code")
	evalHelp   = genericHelp("eval", "Compile and run Rust code, printing the result of the final expression", true, "code")
	miriHelp   = genericHelp("miri", "Execute this program in the Miri interpreter to detect certain cases of undefined behavior (like out-of-bounds memory access)", false, "code")
	expandHelp = genericHelp("expand", "Expand macros to their raw desugared form", false, "code")
	clippyHelp = genericHelp("clippy", "Catch common mistakes and improve the code using the Clippy linter", false, "code")
	fmtHelp    = genericHelp("fmt", "Format code using rustfmt", false, "code")

	microBenchHelp = genericHelp(
		"microbench",
		"Benchmark small snippets of code by running them repeatedly. The public function snippets are run "+
			"in chunks, interleaved: snippet A is run 10000 times, then snippet B is run 10000 times, "+
			"then snippet A again, and so on until a certain time has passed. After that, the "+
			"measurements are averaged and the standard deviation is calculated for each",
		false,
		"\npub fn snippet_a() { /* code */ }\npub fn snippet_b() { /* code */ }\n",
	)
)
