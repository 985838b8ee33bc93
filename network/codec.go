package network

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog"
)

// Section headers of the text format. Matching is case-insensitive.
const (
	SectionNodes   = "#NODES"
	SectionEdges   = "#EDGES"
	SectionBlocked = "#BLOCKED"
)

// fieldSep separates the fields of one record.
const fieldSep = ";"

// maxLineBytes bounds one record. Longer lines are drained and skipped.
const maxLineBytes = 1 << 20

// Sentinel errors for encoding and decoding.
var (
	// ErrIO wraps every read or write failure, so callers can tell
	// "could not read the file" apart from "the file held nothing usable".
	ErrIO = errors.New("network: i/o failure")

	// ErrUnencodable is returned when a key, label or number cannot be
	// written in a form Decode reads back.
	ErrUnencodable = errors.New("network: value cannot be encoded")
)

// Option configures Decode, Encode and the file helpers.
type Option func(*codecOptions)

type codecOptions struct {
	log zerolog.Logger
}

func defaultCodecOptions() codecOptions {
	return codecOptions{log: zerolog.Nop()}
}

// WithLogger routes codec diagnostics (skipped records, section changes) to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *codecOptions) {
		o.log = l
	}
}

// Decode reads a network and its closed roads from r.
//
// Tolerances:
//   - lines are trimmed, blank lines skipped, text before the first header ignored;
//   - headers are matched case-insensitively, unknown sections are skipped;
//   - records with too few fields or unparseable numbers are skipped;
//   - lines longer than 1 MiB are skipped without ending the decode;
//   - edges naming unknown places are ignored (AddEdge is a no-op).
//
// The only error is a read failure, wrapped in ErrIO.
func Decode(r io.Reader, opts ...Option) (*Network, *Blocked, error) {
	cfg := defaultCodecOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &decoder{
		net:     New(),
		blocked: NewBlocked(),
		log:     cfg.log,
	}
	br := bufio.NewReader(r)
	for {
		text, tooLong, err := readLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: read line %d: %w", ErrIO, d.line+1, err)
		}
		d.line++
		if tooLong {
			d.skip("line exceeds 1 MiB")
			continue
		}
		d.feed(text)
	}

	d.log.Debug().
		Int("nodes", d.net.NodeCount()).
		Int("roads", d.net.ConnectionCount()).
		Int("blocked", d.blocked.Len()).
		Int("skipped", d.skipped).
		Msg("network decoded")

	return d.net, d.blocked, nil
}

// readLine returns the next line without its terminator. A line longer than
// maxLineBytes is consumed to its end and reported as tooLong with no text.
// bufio.Reader.ReadLine never returns data together with an error, so a
// non-nil err always means no further line.
func readLine(br *bufio.Reader) (text string, tooLong bool, err error) {
	var buf []byte
	for {
		frag, more, readErr := br.ReadLine()
		if readErr != nil {
			return "", false, readErr
		}
		if !tooLong {
			if len(buf)+len(frag) > maxLineBytes {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, frag...)
			}
		}
		if !more {
			return string(buf), tooLong, nil
		}
	}
}

// decoder is the per-call parse state.
type decoder struct {
	net     *Network
	blocked *Blocked
	log     zerolog.Logger
	section string
	line    int
	skipped int
}

func (d *decoder) feed(raw string) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return
	}
	if strings.HasPrefix(text, "#") {
		d.section = strings.ToUpper(text)
		return
	}

	fields := strings.Split(text, fieldSep)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	switch d.section {
	case SectionNodes:
		d.node(fields)
	case SectionEdges:
		d.edge(fields)
	case SectionBlocked:
		d.block(fields)
	default:
		// preamble or unknown section
	}
}

func (d *decoder) node(f []string) {
	if len(f) < 3 || f[0] == "" {
		d.skip("node record needs key;x;y")
		return
	}
	x, errX := parseNumber(f[1])
	y, errY := parseNumber(f[2])
	if errX != nil || errY != nil {
		d.skip("node coordinates are not numbers")
		return
	}
	if !d.net.AddNode(f[0], orb.Point{x, y}) {
		d.log.Debug().Int("line", d.line).Str("key", f[0]).Msg("duplicate node ignored")
	}
}

func (d *decoder) edge(f []string) {
	if len(f) < 4 || f[0] == "" || f[1] == "" {
		d.skip("edge record needs source;target;label;weight")
		return
	}
	w, err := parseNumber(f[3])
	if err != nil || w < 0 {
		d.skip("edge weight is not a non-negative number")
		return
	}
	d.net.AddEdge(f[0], f[1], f[2], w)
}

func (d *decoder) block(f []string) {
	if len(f) < 2 || f[0] == "" || f[1] == "" {
		d.skip("blocked record needs keyA;keyB")
		return
	}
	d.blocked.Add(f[0], f[1])
}

func (d *decoder) skip(reason string) {
	d.skipped++
	d.log.Debug().Int("line", d.line).Str("section", d.section).Str("reason", reason).Msg("record skipped")
}

// parseNumber parses a locale-independent decimal and rejects NaN.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, strconv.ErrSyntax
	}

	return v, nil
}

// formatNumber writes the shortest decimal that parses back to v.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Encode writes net and blocked to w.
//
// Output order is deterministic: places ascending by key, then every road once
// (smaller key first), then every closed road once (smaller key first, sorted).
// A nil blocked writes an empty #BLOCKED section.
//
// Errors: ErrUnencodable for keys, labels or numbers the format cannot carry,
// ErrIO for write failures. Nothing is written when validation fails.
func Encode(w io.Writer, net *Network, blocked *Blocked) error {
	if err := validate(net, blocked); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	line := func(fields ...string) {
		// bufio.Writer keeps the first error; checked at Flush
		_, _ = bw.WriteString(strings.Join(fields, fieldSep))
		_ = bw.WriteByte('\n')
	}

	line(SectionNodes)
	for n := range net.Nodes() {
		p := n.Data()
		line(n.Key(), formatNumber(p.X()), formatNumber(p.Y()))
	}

	line(SectionEdges)
	for c := range net.Connections() {
		line(c.A, c.B, c.Label, formatNumber(c.Weight))
	}

	line(SectionBlocked)
	for _, p := range blocked.Pairs() {
		line(p.A, p.B)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: write: %w", ErrIO, err)
	}

	return nil
}

// validate rejects values that would not survive a decode.
func validate(net *Network, blocked *Blocked) error {
	for n := range net.Nodes() {
		if err := checkKey(n.Key()); err != nil {
			return err
		}
		if p := n.Data(); math.IsNaN(p.X()) || math.IsNaN(p.Y()) {
			return fmt.Errorf("%w: place %q has a NaN coordinate", ErrUnencodable, n.Key())
		}
	}
	for c := range net.Connections() {
		if err := checkField("label", c.Label); err != nil {
			return fmt.Errorf("%w (road %s-%s)", err, c.A, c.B)
		}
		if math.IsNaN(c.Weight) || c.Weight < 0 {
			return fmt.Errorf("%w: road %s-%s weight %v is not a non-negative number", ErrUnencodable, c.A, c.B, c.Weight)
		}
	}
	for _, p := range blocked.Pairs() {
		if err := checkKey(p.A); err != nil {
			return err
		}
		if err := checkKey(p.B); err != nil {
			return err
		}
	}

	return nil
}

func checkKey(k string) error {
	if k == "" {
		return fmt.Errorf("%w: empty key", ErrUnencodable)
	}
	if strings.HasPrefix(k, "#") {
		return fmt.Errorf("%w: key %q would read as a section header", ErrUnencodable, k)
	}

	return checkField("key", k)
}

func checkField(what, v string) error {
	if strings.ContainsAny(v, fieldSep+"\r\n") {
		return fmt.Errorf("%w: %s %q contains a separator or line break", ErrUnencodable, what, v)
	}
	if strings.TrimSpace(v) != v {
		return fmt.Errorf("%w: %s %q has surrounding blanks", ErrUnencodable, what, v)
	}

	return nil
}
