package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio IO поверх потоков процесса.
// Один bufio.Reader на весь сеанс: повторное создание ридера теряет уже
// прочитанный в буфер ввод.
type Stdio struct {
	in  *bufio.Reader
	out io.Writer
	fd  int // дескриптор терминала для скрытого ввода, -1 если ввод не терминал
}

// NewStdio создает IO для os.Stdin и os.Stdout
func NewStdio() *Stdio {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fd = -1
	}
	return &Stdio{in: bufio.NewReader(os.Stdin), out: os.Stdout, fd: fd}
}

// New создает IO для произвольных потоков. Пароль читается как обычная строка.
func New(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{in: bufio.NewReader(in), out: out, fd: -1}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// ReadInput печатает prompt и читает строку без пробелов по краям.
// Последняя строка без перевода строки тоже возвращается.
func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadPassword читает пароль без эха, если ввод идет с терминала
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	if s.fd < 0 {
		input, err := s.ReadInput(prompt)
		return input, err
	}

	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(s.fd)
	s.Println()
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
