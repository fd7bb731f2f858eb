package console

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/letsssgooo/quizmaster/internal/player"
	"github.com/letsssgooo/quizmaster/internal/quiz"
)

// Размеры поля для звёзд по умолчанию.
const (
	DefaultWidth  = 120
	DefaultHeight = 30
)

const (
	escClear      = "\033[H\033[2J"
	escCursorHome = "\033[0;0H"
)

// Sleeper делает паузу. В тестах подменяется на пустую функцию.
type Sleeper func(time.Duration)

// Options содержит настройки вывода.
type Options struct {
	Out     io.Writer
	NoColor bool
	NoClear bool
	Stars   int // 0 отключает звёзды
	Width   int
	Height  int
	Pause   time.Duration
	Sleep   Sleeper
	Seed    int64 // 0 — случайное зерно
}

// Renderer рисует экраны квиза в терминале.
type Renderer struct {
	out     io.Writer
	noClear bool
	stars   int
	width   int
	height  int
	pause   time.Duration
	sleep   Sleeper
	random  *rand.Rand

	palette []*color.Color
	title   *color.Color
	good    *color.Color
	bad     *color.Color
	warn    *color.Color
	info    *color.Color
}

// NewRenderer создаёт Renderer. Пустые поля Options заменяются значениями по умолчанию.
func NewRenderer(opts Options) *Renderer {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	r := &Renderer{
		out:     opts.Out,
		noClear: opts.NoClear,
		stars:   opts.Stars,
		width:   opts.Width,
		height:  opts.Height,
		pause:   opts.Pause,
		sleep:   opts.Sleep,
		random:  rand.New(rand.NewSource(seed)),
		palette: []*color.Color{
			color.New(color.FgRed),
			color.New(color.FgGreen),
			color.New(color.FgYellow),
			color.New(color.FgBlue),
			color.New(color.FgMagenta),
		},
		title: color.New(color.FgHiCyan, color.Bold),
		good:  color.New(color.FgGreen, color.Bold),
		bad:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow),
		info:  color.New(color.FgHiBlue),
	}

	if opts.NoColor {
		for _, c := range r.colors() {
			c.DisableColor()
		}
	}

	return r
}

func (r *Renderer) colors() []*color.Color {
	return append([]*color.Color{r.title, r.good, r.bad, r.warn, r.info}, r.palette...)
}

// Stars рисует звёздочки случайных цветов в случайных местах экрана.
func (r *Renderer) Stars() {
	if r.stars <= 0 {
		return
	}

	for i := 0; i < r.stars; i++ {
		c := r.palette[r.random.Intn(len(r.palette))]
		x := r.random.Intn(r.width) + 1
		y := r.random.Intn(r.height) + 1

		fmt.Fprintf(r.out, "\033[%d;%dH", y, x)
		c.Fprint(r.out, "*")
	}

	fmt.Fprint(r.out, escCursorHome)
}

// Clear очищает экран.
func (r *Renderer) Clear() {
	if r.noClear {
		return
	}

	fmt.Fprint(r.out, escClear)
}

// Banner выводит приветствие.
func (r *Renderer) Banner() {
	for _, line := range []string{
		"********************************************",
		"*              WELCOME TO THE              *",
		"*            QUIZ MASTER PROGRAM           *",
		"********************************************",
	} {
		r.title.Fprintf(r.out, "%80s", line)
		fmt.Fprintln(r.out)
	}
	fmt.Fprintln(r.out)
}

// Prompt выводит приглашение к вводу без перевода строки.
func (r *Renderer) Prompt(text string) {
	fmt.Fprintf(r.out, "%60s", text)
}

// Announce выводит строку по центру.
func (r *Renderer) Announce(text string) {
	r.info.Fprintf(r.out, "%60s", text)
	fmt.Fprintln(r.out)
}

// Divider выводит разделитель между вопросами.
func (r *Renderer) Divider() {
	r.Stars()
}

// PlayerStatus показывает имя и счёт игрока.
func (r *Renderer) PlayerStatus(p *player.Player) {
	fmt.Fprintf(r.out, "%80s%s\n", "Player: ", p.Name())
	fmt.Fprintf(r.out, "%80s%d\n", "Score: ", p.Score())
	fmt.Fprintln(r.out)
}

// Question показывает вопрос и приглашение к вводу ответа.
func (r *Renderer) Question(_ int, q quiz.Question) {
	q.Display(r.out)
	fmt.Fprintf(r.out, "%52s", "Enter your answer: ")
}

// Retry просит ввести ответ ещё раз.
func (r *Renderer) Retry() {
	r.warn.Fprintf(r.out, "%52s", "Please enter a number: ")
}

// Feedback сообщает, верен ли ответ.
func (r *Renderer) Feedback(correct bool) {
	if correct {
		r.good.Fprintf(r.out, "%45s", "Correct!")
	} else {
		r.bad.Fprintf(r.out, "%45s", "Incorrect!")
	}
	fmt.Fprintln(r.out)
}

// Pause ждёт заданное время.
func (r *Renderer) Pause() {
	if r.pause <= 0 {
		return
	}

	r.sleep(r.pause)
}

// Completed показывает итог прохождения.
func (r *Renderer) Completed(res *quiz.Result) {
	fmt.Fprintf(r.out, "Quiz completed. Your score: %s (%d%%)\n", res, res.Percentage())
}

// FinalScore показывает имя игрока и итоговый счёт.
func (r *Renderer) FinalScore(res *quiz.Result) {
	fmt.Fprintf(r.out, "Player name: %s\n", res.PlayerName)
	fmt.Fprintf(r.out, "Final Score: %d\n", res.Score)
}

// Saved сообщает, куда сохранён результат.
func (r *Renderer) Saved(location string) {
	r.info.Fprintf(r.out, "Quiz results saved to %s", location)
	fmt.Fprintln(r.out)
}

// SaveFailed сообщает об ошибке сохранения. Игра при этом продолжается.
func (r *Renderer) SaveFailed(err error) {
	r.bad.Fprintf(r.out, "Failed to save quiz results: %v", err)
	fmt.Fprintln(r.out)
}

// ReplayPrompt спрашивает, сыграть ли ещё раз.
func (r *Renderer) ReplayPrompt() {
	fmt.Fprint(r.out, "Do you want to play again? (Y/N): ")
}

// InvalidReplay сообщает о неверном ответе на вопрос о повторной игре.
func (r *Renderer) InvalidReplay() {
	r.warn.Fprint(r.out, "Incorrect Option! Try again")
	fmt.Fprintln(r.out)
}

// Goodbye прощается с игроком.
func (r *Renderer) Goodbye() {
	r.title.Fprint(r.out, "Good Bye!")
	fmt.Fprintln(r.out)
}
