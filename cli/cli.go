// Package cli implements the one-shot scan command.
package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"portscope/report"
	"portscope/scanner"
)

// Run is the main entry point for the CLI application. It parses flags and
// arguments (falling back to interactive prompts when none are given),
// executes the scan, prints the summary, and saves the report file.
func Run() {
	workers := flag.Int("w", 100, "concurrent scan workers (50-500 recommended)")
	jsonOutput := flag.Bool("json", false, "print the report as JSON")
	noColor := flag.Bool("no-color", false, "disable colored output")
	outFile := flag.String("o", "", "report file path (default scan_report_<target>.txt)")
	flag.Parse()

	console := NewConsole(os.Stdout, !*noColor && ColorSupported(os.Stdout))

	var (
		target             string
		startPort, endPort int
		workerCount        = *workers
		err                error
	)

	args := flag.Args()
	switch {
	case len(args) == 2:
		target = args[0]
		startPort, endPort, err = parsePortRange(args[1])
		if err != nil {
			console.Errorf("Error: %v", err)
			os.Exit(2)
		}
	case len(args) == 0:
		target, startPort, endPort, workerCount, err = promptScanInput(os.Stdin)
		if err != nil {
			console.Errorf("Error: %v", err)
			os.Exit(2)
		}
	default:
		printUsage()
		os.Exit(2)
	}

	if workerCount < 1 {
		console.Errorf("Error: worker count must be at least 1")
		os.Exit(2)
	}

	console.Headerf("\n=== PORTSCOPE TCP SCANNER ===\n")

	cfg := scanner.Config{
		Target:    target,
		StartPort: startPort,
		EndPort:   endPort,
		Workers:   workerCount,
		Notify:    func(res scanner.ScanResult) { console.OpenPort(res.Port) },
		Progress:  os.Stdout,
	}

	rep, err := scanner.Run(cfg)
	if err != nil {
		var resErr *scanner.ResolutionError
		if errors.As(err, &resErr) {
			console.Errorf("Could not resolve target! Invalid hostname!")
		} else {
			console.Errorf("Error: %v", err)
		}
		os.Exit(1)
	}

	console.Successf("\nScan Completed!\n")
	console.Printf("Resolved IP: %s\n", rep.IP)
	console.Printf("Reverse DNS: %s\n", rep.ReverseDNS)
	console.Printf("Open Ports Found: %v\n", rep.OpenPorts())
	console.Printf("Guessing Operating System: %s\n", rep.OSGuess)

	if *jsonOutput {
		outputJSON(rep)
	}

	path := *outFile
	if path == "" {
		path = report.Filename(target)
	}
	if err := report.Write(path, rep); err != nil {
		// A failed file write degrades to a warning; the printed results stand.
		console.Errorf("Warning: could not save report: %v", err)
		return
	}
	console.Headerf("\nReport saved as %s\n", path)
}

func printUsage() {
	fmt.Println("Usage: portscope [-w workers] [-json] [-no-color] [-o file] target startPort-endPort")
	fmt.Println("Example: portscope -w 200 scanme.nmap.org 1-1024")
	fmt.Println("Run without arguments for interactive prompts, or 'portscope serve' for the REST API.")
}

// promptScanInput collects the four scan parameters interactively.
func promptScanInput(in io.Reader) (target string, startPort, endPort, workerCount int, err error) {
	reader := bufio.NewReader(in)

	target, err = promptString(reader, "Enter target hostname/IP: ")
	if err != nil {
		return "", 0, 0, 0, err
	}
	startPort, err = promptInt(reader, "Enter start port: ")
	if err != nil {
		return "", 0, 0, 0, err
	}
	endPort, err = promptInt(reader, "Enter end port: ")
	if err != nil {
		return "", 0, 0, 0, err
	}
	if startPort < 1 || endPort > 65535 || startPort > endPort {
		return "", 0, 0, 0, fmt.Errorf("invalid port range %d-%d", startPort, endPort)
	}
	workerCount, err = promptInt(reader, "Enter number of workers (50-500 recommended): ")
	if err != nil {
		return "", 0, 0, 0, err
	}
	return target, startPort, endPort, workerCount, nil
}

func promptString(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("empty input")
	}
	return line, nil
}

func promptInt(reader *bufio.Reader, prompt string) (int, error) {
	line, err := promptString(reader, prompt)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(line)
}

// parsePortRange extracts start and end port from string format "start-end".
func parsePortRange(portRange string) (int, int, error) {
	parts := strings.Split(portRange, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid port range format. Use startPort-endPort")
	}

	startPort, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("start port is not a number: %s", parts[0])
	}

	endPort, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("end port is not a number: %s", parts[1])
	}

	if startPort < 1 || startPort > 65535 || endPort < 1 || endPort > 65535 {
		return 0, 0, fmt.Errorf("ports must be within 1-65535 range")
	}

	if startPort > endPort {
		return 0, 0, fmt.Errorf("start port must be less than or equal to end port")
	}

	return startPort, endPort, nil
}

// outputJSON marshals and prints the report in JSON format.
func outputJSON(rep *scanner.Report) {
	jsonData, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		fmt.Printf("Error encoding to JSON: %v\n", err)
		return
	}
	fmt.Println(string(jsonData))
}
