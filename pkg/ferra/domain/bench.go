package domain

import (
	"fmt"
	"strings"
)

const benchCandidateMarker = "pub fn "

// noBenchCandidatesReply is sent when the snippet defines no public functions; no service call is made then.
const noBenchCandidatesReply = "No public functions found for benchmarking :thinking:"

// benchHarness runs the candidate functions interleaved in fixed-size chunks until five seconds have passed,
// then reports the mean iteration time and the standard deviation per candidate. Interleaving keeps a noisy
// neighbor on the playground host from skewing one candidate more than the others.
const benchHarness = `
fn bench(functions: &[(&str, fn())]) {
    const CHUNK_SIZE: usize = 10000;

    // Warm up
    for (_, function) in functions.iter() {
        for _ in 0..CHUNK_SIZE {
            (function)();
        }
    }

    let mut functions_chunk_times = functions.iter().map(|_| Vec::new()).collect::<Vec<_>>();

    let start = std::time::Instant::now();
    while (std::time::Instant::now() - start).as_secs() < 5 {
        for (chunk_times, (_, function)) in functions_chunk_times.iter_mut().zip(functions) {
            let start = std::time::Instant::now();
            for _ in 0..CHUNK_SIZE {
                (function)();
            }
            chunk_times.push((std::time::Instant::now() - start).as_secs_f64() / CHUNK_SIZE as f64);
        }
    }

    for (chunk_times, (function_name, _)) in functions_chunk_times.iter().zip(functions) {
        let mean_time: f64 = chunk_times.iter().sum::<f64>() / chunk_times.len() as f64;
        let standard_deviation: f64 = f64::sqrt(
            chunk_times
                .iter()
                .map(|time| (time - mean_time).powi(2))
                .sum::<f64>()
                / chunk_times.len() as f64,
        );

        println!(
            "{}: {:.0} iters per second ({:.1}ns±{:.1})",
            function_name,
            1.0 / mean_time,
            mean_time * 1_000_000_000.0,
            standard_deviation * 1_000_000_000.0,
        );
    }
}

fn main() {
`

// MicroBench benchmarks the snippet's public functions against each other on the playground.
// black_box requires the nightly channel, and benchmarking a debug build makes no sense, so both are forced
// regardless of the user's flags.
func (s *CommandService) MicroBench(args Args) (string, error) {
	userInput, err := s.resolveCode(args)
	if err != nil {
		return "", err
	}

	candidates := BenchCandidates(userInput)
	if len(candidates) == 0 {
		return noBenchCandidatesReply, nil
	}

	// The import is a convenience for users
	var code strings.Builder
	code.WriteString("#![feature(test)] #[allow(unused_imports)] use std::hint::black_box;\n")
	code.WriteString(userInput)
	code.WriteString(benchHarness)
	code.WriteString("bench(&[")
	for _, name := range candidates {
		code.WriteString(fmt.Sprintf("(\"%s\", %s), ", name, name))
	}
	code.WriteString("]);\n}\n")

	flags, diagnostics := ParseFlags(args.Params)
	// The forced flags also flow into the gist deep link, so the link reopens the configuration
	// that actually ran, not the one the user asked for.
	flags.Channel = ChannelNightly
	flags.Mode = ModeRelease

	result, err := s.playground.Execute(ExecuteRequest{
		Code:      code.String(),
		Channel:   flags.Channel,
		Edition:   flags.Edition,
		CrateType: CrateTypeBinary,
		Mode:      flags.Mode,
		Tests:     false,
	})
	if err != nil {
		return "", err
	}
	formatExecuteStderr(&result)

	if !strings.Contains(userInput, "black_box") {
		diagnostics += "Hint: use the black_box function to prevent computations from being optimized out\n"
	}
	return s.buildReply(result, code.String(), flags, diagnostics)
}

// BenchCandidates finds the names of the snippet's public functions by literally scanning for "pub fn ".
// The name is whatever sits between the marker and the next opening parenthesis.
func BenchCandidates(code string) []string {
	var names []string
	offset := 0
	for {
		index := strings.Index(code[offset:], benchCandidateMarker)
		if index == -1 {
			break
		}
		nameStart := offset + index + len(benchCandidateMarker)
		parenIndex := strings.IndexByte(code[nameStart:], '(')
		if parenIndex == -1 {
			break
		}
		names = append(names, strings.TrimSpace(code[nameStart:nameStart+parenIndex]))
		offset = nameStart + parenIndex
	}
	return names
}
