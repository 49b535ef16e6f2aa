package constants

import "time"

// Field Layout
const (
	// SaucerRows is the number of rows (from the top) saucers may fly on
	SaucerRows = 3

	// MinScreenWidth is the narrowest terminal the game accepts
	MinScreenWidth = 10

	// ReservedRows are rows below the saucer field: launch site, status line, and one gap
	ReservedRows = 3
)

// Saucer Population
const (
	// InitialSaucers is the number of saucers spawned when the game starts
	InitialSaucers = 3

	// MaxSaucers is the ceiling on saucer slots, must be >= InitialSaucers
	MaxSaucers = 6

	// MaxSaucerSlots is the owner bitmap capacity of a collision cell
	MaxSaucerSlots = 64

	// MaxSaucerDelay is the slowest saucer in ticks per column
	MaxSaucerDelay = 15

	// ExtraSaucerOdds is 1-in-N chance of an extra saucer per spawn roll
	ExtraSaucerOdds = 50

	// ExtraSaucerInterval is the period between extra saucer rolls
	ExtraSaucerInterval = 200 * time.Millisecond

	// SaucerColors is the number of distinct saucer colours before the cycle repeats
	SaucerColors = 6
)

// Shots & Limits
const (
	// StartingAmmo is the number of rockets at the start of the game
	StartingAmmo = 15

	// MaxShots is the number of shot slots; also the ceiling on shots in flight
	MaxShots = 100

	// MaxEscaped is the number of escaped saucers that ends the game
	MaxEscaped = 20

	// TaskHeadroom covers the long-lived goroutines (controller, reclaimer, input, main)
	TaskHeadroom = 4
)

// Timing
const (
	// SaucerTick is the tick unit multiplied by a saucer's delay
	SaucerTick = 20 * time.Millisecond

	// ShotTick is the interval between shot advances
	ShotTick = 60 * time.Millisecond
)
