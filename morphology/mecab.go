package morphology

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"
)

// MecabKo is the Korean backend. It drives the mecab command with
// mecab-ko-dic, the dictionary the Sejong tag set and the compound
// expressions come from, and applies the user dictionary on top of its
// segmentation.
type MecabKo struct {
	command  string
	args     []string
	poolSize int
}

type MecabOption func(*MecabKo)

// MecabCommand sets the mecab executable. Defaults to "mecab" on PATH.
func MecabCommand(path string) MecabOption {
	return func(m *MecabKo) {
		m.command = path
	}
}

// MecabDicDir points mecab at a mecab-ko-dic directory.
func MecabDicDir(dir string) MecabOption {
	return func(m *MecabKo) {
		m.args = append(m.args, "-d", dir)
	}
}

// MecabArgs appends raw command line arguments.
func MecabArgs(args ...string) MecabOption {
	return func(m *MecabKo) {
		m.args = append(m.args, args...)
	}
}

// MecabPoolSize caps the number of idle mecab processes.
func MecabPoolSize(n int) MecabOption {
	return func(m *MecabKo) {
		m.poolSize = n
	}
}

func NewMecabKo(opts ...MecabOption) *MecabKo {
	m := &MecabKo{
		command:  "mecab",
		poolSize: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MecabKo) Catalog() Catalog {
	return SejongCatalog
}

func (m *MecabKo) Open(opts Options) (Tokenizer, error) {
	var user *UserDictionary
	if opts.UserDictionary != nil {
		var err error
		if user, err = ParseUserDictionary(opts.UserDictionary); err != nil {
			return nil, err
		}
	}
	path, err := exec.LookPath(m.command)
	if err != nil {
		return nil, fmt.Errorf("mecab: %w", err)
	}
	analysis := koreanAnalysis{user: user, mode: opts.DecompoundMode}
	args := append([]string{}, m.args...)
	pool, err := NewPool(m.poolSize, func() (Tokenizer, error) {
		return startMecab(path, args, analysis)
	})
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// mecabProcess is one mecab process fed a line at a time. It is not safe
// for concurrent use; Pool hands it to one caller at a time.
type mecabProcess struct {
	cmd      *exec.Cmd
	stdin    io.WriteCloser
	stdout   *bufio.Reader
	analysis koreanAnalysis
	broken   bool
}

func startMecab(path string, args []string, analysis koreanAnalysis) (*mecabProcess, error) {
	cmd := exec.Command(path, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start mecab: %w", err)
	}
	return &mecabProcess{
		cmd:      cmd,
		stdin:    stdin,
		stdout:   bufio.NewReader(stdout),
		analysis: analysis,
	}, nil
}

func (p *mecabProcess) Analyze(_, text string) ([]Token, error) {
	if p.broken {
		return nil, fmt.Errorf("mecab process is no longer usable")
	}
	result := make([]Token, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		morphemes, err := p.parse(line)
		if err != nil {
			p.broken = true
			return nil, err
		}
		result = p.analysis.appendLine(result, line, morphemes)
	}
	return result, nil
}

func (p *mecabProcess) parse(line string) ([]mecabMorpheme, error) {
	if _, err := io.WriteString(p.stdin, line+"\n"); err != nil {
		return nil, fmt.Errorf("write to mecab: %w", err)
	}
	var morphemes []mecabMorpheme
	for {
		out, err := p.stdout.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("read from mecab: %w", err)
		}
		out = strings.TrimRight(out, "\r\n")
		if out == "EOS" {
			return morphemes, nil
		}
		m, err := parseMecabLine(out)
		if err != nil {
			return nil, err
		}
		morphemes = append(morphemes, m)
	}
}

func (p *mecabProcess) Broken() bool {
	return p.broken
}

func (p *mecabProcess) Close() error {
	p.broken = true
	p.stdin.Close()
	return p.cmd.Wait()
}

type mecabMorpheme struct {
	token Token
	parts []Token // nil unless mecab-ko-dic lists an expression
}

// parseMecabLine parses one line of mecab-ko-dic output:
//
//	surface \t POS,semantic,jongseong,reading,type,firstPOS,lastPOS,expression
//
// where expression is "삼성/NNP/*+전자/NNG/*" for compounds and inflections.
func parseMecabLine(line string) (mecabMorpheme, error) {
	surface, feature, ok := strings.Cut(line, "\t")
	if !ok || surface == "" {
		return mecabMorpheme{}, fmt.Errorf("malformed mecab output %q", line)
	}
	features := strings.Split(feature, ",")
	token := NewToken(surface, resolveSejong(features[0]))
	if len(features) > 3 && features[3] != "*" && features[3] != surface {
		token.Reading = features[3]
	}
	m := mecabMorpheme{token: token}
	if len(features) > 7 && features[4] != "*" && features[7] != "*" {
		m.parts = parseExpression(features[7])
	}
	return m, nil
}

func parseExpression(expr string) []Token {
	var parts []Token
	for _, e := range strings.Split(expr, "+") {
		cols := strings.Split(e, "/")
		if len(cols) < 2 || cols[0] == "" {
			return nil
		}
		parts = append(parts, NewToken(cols[0], resolveSejong(cols[1])))
	}
	return parts
}

// resolveSejong maps a mecab-ko-dic POS such as "VCP+EF" to its leading tag.
func resolveSejong(pos string) Tag {
	left, _, _ := strings.Cut(pos, "+")
	tag, err := SejongCatalog.Resolve(left)
	if err != nil {
		return TagUNKNOWN
	}
	return tag
}

type koreanAnalysis struct {
	user *UserDictionary
	mode DecompoundMode
}

func (a koreanAnalysis) appendLine(dst []Token, line string, morphemes []mecabMorpheme) []Token {
	for _, m := range a.user.override(line, morphemes) {
		dst = AppendDecompounded(dst, a.mode, m.token, m.parts)
	}
	return dst
}

// override replaces the morphemes spelling a user entry with that entry.
// Entries are matched longest first, starting at morpheme boundaries. When an
// entry ends inside a morpheme, the rest of that morpheme is kept with its
// tag.
func (d *UserDictionary) override(line string, morphemes []mecabMorpheme) []mecabMorpheme {
	if d.Len() == 0 || len(morphemes) == 0 {
		return morphemes
	}
	starts := make([]int, len(morphemes))
	ends := make([]int, len(morphemes))
	cursor := 0
	for i, m := range morphemes {
		idx := strings.Index(line[cursor:], m.token.Surface)
		if idx < 0 {
			return morphemes
		}
		starts[i] = cursor + idx
		ends[i] = starts[i] + len(m.token.Surface)
		cursor = ends[i]
	}

	result := make([]mecabMorpheme, 0, len(morphemes))
	for i := 0; i < len(morphemes); {
		word, segs, ok := d.LongestPrefix(line[starts[i]:])
		if !ok {
			result = append(result, morphemes[i])
			i++
			continue
		}
		token, parts := userEntry(word, segs)
		result = append(result, mecabMorpheme{token: token, parts: parts})
		end := starts[i] + len(word)
		j := i
		for j < len(morphemes) && ends[j] <= end {
			j++
		}
		if j < len(morphemes) && starts[j] < end {
			rest := line[end:ends[j]]
			result = append(result, mecabMorpheme{token: NewToken(rest, morphemes[j].token.Tag)})
			j++
		}
		i = j
	}
	return result
}
