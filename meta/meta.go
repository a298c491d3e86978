// meta/meta.go
package meta

// SEED is the default seed for setup and computer moves.
const SEED = 1

// MAX_TURNS caps the number of moves in a self-play game.
const MAX_TURNS = 3000

// GAMES is the default number of self-play games per experiment.
const GAMES = 20

const OUTPUT_DIR = "experiments"

const LOG_LEVEL = "info"
