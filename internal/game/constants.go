package game

// --- Grid geometry ---

const (
	// TileSize is the edge length of one grid cell in pixels. All tank
	// movement is quantized to this unit.
	TileSize = 32

	GridCols = 16
	GridRows = 16

	// PlayfieldW/H are the logical pixel dimensions of the battlefield.
	PlayfieldW = GridCols * TileSize
	PlayfieldH = GridRows * TileSize
)

// --- Frame timing ---

const (
	// FPS is the fixed logical tick rate. One Step advances the world by
	// exactly FrameDelta seconds; there is no sub-stepping.
	FPS        = 60
	FrameDelta = 1.0 / float64(FPS)
)

// --- Tank parameters ---

const (
	tankMoveDelay = 0.15 // seconds between accepted moves

	playerHealth = 1
	playerLives  = 3
	enemyHealth  = 1
	enemyLives   = 1

	// invincibilityDuration is the grace window granted on player respawn.
	invincibilityDuration = 3.0
	// blinkInterval drives the invincibility render blink.
	blinkInterval = 0.2
)

// --- Bullet parameters ---

const (
	bulletSpeed = 360.0 // px/s
	bulletSize  = 8.0   // bullets are square
)

// --- Enemy AI cadences ---

const (
	enemyDirectionInterval = 2.0 // seconds between random heading changes
	enemyShootInterval     = 1.5 // seconds between shot attempts
)

// --- Spawner ---

const (
	defaultMaxSpawns = 5   // cumulative enemy spawns per level
	spawnInterval    = 5.0 // seconds between spawn attempts
)

// --- Tiles ---

const (
	// waterFrameInterval is the water animation frame cadence.
	waterFrameInterval = 0.5
)
