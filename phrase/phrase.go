// Package phrase provides the ghost's built-in speech lines and a shuffled
// non-repeating draw queue so the ghost never says the same thing twice
// before it has worked through the whole list.
package phrase

import "math/rand"

// Friendly is the built-in idle chatter list.
var Friendly = []string{
	"Boo! ~",
	"I'm friendly!",
	"*floats happily*",
	"Spooky vibes~",
	"Want a hug?",
	"I like you!",
	"*wiggles*",
	"So cozy here~",
	"Hewwo!",
	"*happy ghost noises*",
	"You're doing great!",
	"Take a break?",
	"Stay hydrated!",
	"*peeks at you*",
	"Boop!",
	"I believe in you!",
	"*sparkles*",
	"Keep going!",
	"You got this!",
	"*floats around*",
	"I'm here for the boos!",
	"You're my ghoul friend~",
	"I'm dead tired...",
	"Just passing through!",
	"Life is un-boo-lievable!",
	"I've got spirit!",
	"Don't ghost me!",
	"Creeping it real~",
	"Haunt you later!",
	"If you got it, haunt it!",
	"I'm having a fang-tastic day!",
	"Ghosting is my thing~",
	"You look boo-tiful!",
	"I'm a little ghoul-ish~",
	"Spook-tacular vibes!",
	"The ghoul next door~",
	"I ain't afraid of no work!",
	"Fangs for being here!",
	"Having a wail of a time!",
	"*phases through wall*",
	"Boo-lieve in yourself!",
	"I'm just a lost soul~",
	"Eek-xcuse me!",
	"*rattles chains cutely*",
	"I'm dead serious rn",
	"That was eerie-sistible!",
	"Ghouls just wanna have fun!",
}

// Scare is the built-in list used by the scare sequence.
var Scare = []string{
	"BOO!!",
	"Did I scare you?",
	"Behind you!!",
	"I see you~",
	"*jumps out*",
	"Peek-a-boo!",
	"Miss me?",
	"Surprise!!",
	"Gotcha!",
	"Still here~",
	"You can't escape me!",
	"I never left...",
	"*appears menacingly*",
	"Thought you lost me?",
	"Guess who!",
	"You looked away...",
	"I was here the whole time",
	"*materializes*",
	"Boo from the beyond!",
	"Can't get rid of me~",
	"The walls have eyes!",
	"*emerges from screen*",
	"Right behind you!",
	"I haunt this desktop now",
	"Feeling a chill?",
	"*phases into reality*",
	"You forgot about me!",
	"Knock knock... BOO!",
	"The ghost is back!",
	"I'm always watching~",
}

// Pick returns a uniformly random entry from list, or "" when empty.
func Pick(rng *rand.Rand, list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rng.Intn(len(list))]
}

// Queue draws phrases from a pool in shuffled order without repeats.
// When the queue runs dry it refills from the pool and reshuffles.
type Queue struct {
	rng   *rand.Rand
	pool  []string
	queue []string
}

// NewQueue creates a queue over pool with the given random source.
func NewQueue(rng *rand.Rand, pool []string) *Queue {
	return &Queue{rng: rng, pool: pool}
}

// SetPool replaces the pool and discards any pending shuffled order, so a
// config change takes effect on the very next draw.
func (q *Queue) SetPool(pool []string) {
	q.pool = pool
	q.queue = nil
}

// Next returns the next phrase. Every phrase in the pool is drawn exactly
// once before any repeats. Returns "" for an empty pool.
func (q *Queue) Next() string {
	if len(q.pool) == 0 {
		return ""
	}
	if len(q.queue) == 0 {
		q.queue = make([]string, len(q.pool))
		for i, j := range q.rng.Perm(len(q.pool)) {
			q.queue[i] = q.pool[j]
		}
	}
	p := q.queue[len(q.queue)-1]
	q.queue = q.queue[:len(q.queue)-1]
	return p
}
