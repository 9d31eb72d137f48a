package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/udisondev/hostile/internal/model"
)

// Journal — общий упорядоченный журнал вызовов всех моков.
// Позволяет проверять порядок побочных эффектов между разными коллабораторами.
type Journal struct {
	mu    sync.Mutex
	calls []string
}

// NewJournal создаёт пустой журнал.
func NewJournal() *Journal {
	return &Journal{}
}

// Add записывает вызов.
func (j *Journal) Add(format string, args ...any) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.calls = append(j.calls, fmt.Sprintf(format, args...))
}

// Calls возвращает копию журнала.
func (j *Journal) Calls() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.calls...)
}

// Reset очищает журнал.
func (j *Journal) Reset() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.calls = nil
}

// MockNavigator записывает команды навигации. Velocity задаётся тестом.
type MockNavigator struct {
	journal *Journal

	Velocity     float64
	Stopped      bool
	Enabled      bool
	Destination  model.Vec3
	Destinations int
}

// NewMockNavigator создаёт включённый навигатор.
func NewMockNavigator(j *Journal) *MockNavigator {
	return &MockNavigator{journal: j, Enabled: true}
}

func (m *MockNavigator) SetDestination(dst model.Vec3) {
	m.Destination = dst
	m.Destinations++
	m.journal.Add("nav.SetDestination")
}

func (m *MockNavigator) SetStopped(stopped bool) {
	m.Stopped = stopped
}

func (m *MockNavigator) VelocityMagnitude() float64 {
	return m.Velocity
}

func (m *MockNavigator) SetEnabled(enabled bool) {
	m.Enabled = enabled
	m.journal.Add("nav.SetEnabled(%t)", enabled)
}

// MockAnimator записывает параметры, триггеры и скорость проигрывания.
type MockAnimator struct {
	journal *Journal

	Floats   map[string]float64
	Triggers []string
	Speed    float64
	SpeedSet int
	Clip     time.Duration
}

// NewMockAnimator создаёт аниматор с длиной текущего клипа clip.
func NewMockAnimator(j *Journal, clip time.Duration) *MockAnimator {
	return &MockAnimator{journal: j, Floats: make(map[string]float64), Speed: 1, Clip: clip}
}

func (m *MockAnimator) SetFloat(name string, value float64) {
	m.Floats[name] = value
}

func (m *MockAnimator) SetTrigger(name string) {
	m.Triggers = append(m.Triggers, name)
	m.journal.Add("anim.SetTrigger(%s)", name)
}

func (m *MockAnimator) CurrentClipDuration() time.Duration {
	return m.Clip
}

func (m *MockAnimator) SetSpeed(speed float64) {
	m.Speed = speed
	m.SpeedSet++
	m.journal.Add("anim.SetSpeed(%g)", speed)
}

// Spawn — один вызов SpawnTransient.
type Spawn struct {
	Effect   string
	At       model.Vec3
	Facing   model.Vec3
	Lifetime time.Duration
}

// MockEffects записывает спавн эффектов и проигранные звуки.
type MockEffects struct {
	journal *Journal

	Spawns []Spawn
	Sounds []string
}

// NewMockEffects создаёт пустой MockEffects.
func NewMockEffects(j *Journal) *MockEffects {
	return &MockEffects{journal: j}
}

func (m *MockEffects) SpawnTransient(effect string, at, facing model.Vec3, lifetime time.Duration) {
	m.Spawns = append(m.Spawns, Spawn{Effect: effect, At: at, Facing: facing, Lifetime: lifetime})
	m.journal.Add("fx.Spawn(%s)", effect)
}

func (m *MockEffects) PlayOneShot(clip string) {
	m.Sounds = append(m.Sounds, clip)
	m.journal.Add("fx.Play(%s)", clip)
}

// MockCollider записывает включение/выключение коллайдера.
type MockCollider struct {
	journal *Journal
	Enabled bool
}

// NewMockCollider создаёт включённый коллайдер.
func NewMockCollider(j *Journal) *MockCollider {
	return &MockCollider{journal: j, Enabled: true}
}

func (m *MockCollider) SetEnabled(enabled bool) {
	m.Enabled = enabled
	m.journal.Add("collider.SetEnabled(%t)", enabled)
}

// MockBeam хранит состояние луча и историю конечных точек.
type MockBeam struct {
	journal *Journal

	Enabled bool
	Start   model.Vec3
	End     model.Vec3
	Ends    []model.Vec3 // every SetPositions end, in order
	Shown   int          // SetEnabled(true) count
}

// NewMockBeam создаёт скрытый луч.
func NewMockBeam(j *Journal) *MockBeam {
	return &MockBeam{journal: j}
}

func (m *MockBeam) SetEnabled(enabled bool) {
	m.Enabled = enabled
	if enabled {
		m.Shown++
	}
	m.journal.Add("beam.SetEnabled(%t)", enabled)
}

func (m *MockBeam) SetPositions(start, end model.Vec3) {
	m.Start = start
	m.End = end
	m.Ends = append(m.Ends, end)
}

// StubRay возвращает заранее заданный результат каста и считает вызовы.
type StubRay struct {
	Hit   model.Hit
	OK    bool
	Casts int
}

func (s *StubRay) Raycast(origin, dir model.Vec3, maxDist float64) (model.Hit, bool) {
	s.Casts++
	return s.Hit, s.OK
}
