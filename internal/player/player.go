package player

// Player хранит имя игрока и его текущий счёт.
type Player struct {
	name  string
	score int
}

// New создаёт игрока с нулевым счётом.
func New(name string) *Player {
	return &Player{name: name}
}

// Name возвращает имя игрока.
func (p *Player) Name() string {
	return p.name
}

// Score возвращает текущий счёт.
func (p *Player) Score() int {
	return p.score
}

// IncreaseScore добавляет очки к счёту.
func (p *Player) IncreaseScore(points int) {
	p.score += points
}
