package physics

const (
	PlayerSize  = 40.0
	PlayerSpeed = 3.0
	MoveScale   = 0.3
	Friction    = 0.85

	RecoilForce   = 1.2 // base force of recoil when players collide
	RecoilDamping = 0.5
	RecoilDecay   = 0.85 // per-tick decay of the stored recoil vector
	RecoilEpsilon = 0.1
	RecoilControl = 0.5 // movement multiplier while in recoil

	MaxCharge            = 1.0
	ChargeRate           = 0.02
	ChargeDecay          = 0.02
	ChargeBoost          = 2.5 // extra force a full charge adds
	ChargeSpeedThreshold = 1.0

	CollisionCooldown = 10 // ticks
)

type Tuning struct {
	PlayerSize  float64 `yaml:"player_size"`
	PlayerSpeed float64 `yaml:"player_speed"`
	MoveScale   float64 `yaml:"move_scale"`
	Friction    float64 `yaml:"friction"`

	RecoilForce   float64 `yaml:"recoil_force"`
	RecoilDamping float64 `yaml:"recoil_damping"`
	RecoilDecay   float64 `yaml:"recoil_decay"`
	RecoilEpsilon float64 `yaml:"recoil_epsilon"`
	RecoilControl float64 `yaml:"recoil_control"`

	MaxCharge            float64 `yaml:"max_charge"`
	ChargeRate           float64 `yaml:"charge_rate"`
	ChargeDecay          float64 `yaml:"charge_decay"`
	ChargeBoost          float64 `yaml:"charge_boost"`
	ChargeSpeedThreshold float64 `yaml:"charge_speed_threshold"`

	CollisionCooldown int `yaml:"collision_cooldown"`
}

func DefaultTuning() Tuning {
	return Tuning{
		PlayerSize:           PlayerSize,
		PlayerSpeed:          PlayerSpeed,
		MoveScale:            MoveScale,
		Friction:             Friction,
		RecoilForce:          RecoilForce,
		RecoilDamping:        RecoilDamping,
		RecoilDecay:          RecoilDecay,
		RecoilEpsilon:        RecoilEpsilon,
		RecoilControl:        RecoilControl,
		MaxCharge:            MaxCharge,
		ChargeRate:           ChargeRate,
		ChargeDecay:          ChargeDecay,
		ChargeBoost:          ChargeBoost,
		ChargeSpeedThreshold: ChargeSpeedThreshold,
		CollisionCooldown:    CollisionCooldown,
	}
}

// Radius is half the player size; players collide as circles of this radius.
func (t Tuning) Radius() float64 { return t.PlayerSize / 2 }
