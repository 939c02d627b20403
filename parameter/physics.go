package parameter

// World defaults, all SI units
const (
	// Gravity is the vertical acceleration, negative points down
	Gravity = -9.8

	// AirDensity in kg/m^3; zero disables air resistance
	AirDensity = 0.0

	// AirViscosity scales the air resistance model together with AirDensity
	AirViscosity = 0.0

	// WindX and WindZ are the horizontal wind components in m/s
	WindX = 0.0
	WindZ = 0.0
)

// Projectile defaults used by the scene when firing
const (
	// ProjectileMass in kg
	ProjectileMass = 1.0

	// ProjectileRadius in meters, also the hit radius against tanks
	ProjectileRadius = 1.0

	// ProjectileSurfaceArea in m^2
	ProjectileSurfaceArea = 1.0
)

// Tank defaults
const (
	// TankRadius is the hit sphere radius in meters
	TankRadius = 3.0

	// TankMass in kg
	TankMass = 1000.0

	// TankPower is the default muzzle speed in m/s
	TankPower = 30.0

	// TankPowerMax caps the muzzle speed settable from the console
	TankPowerMax = 200.0

	// TankTurretAngle is the default heading in degrees, 0 faces +Z
	TankTurretAngle = 0.0

	// TankWeaponAngle is the default elevation in degrees
	TankWeaponAngle = 45.0

	// TankEnergy is the starting and maximum energy
	TankEnergy = 100.0

	// TankSeparation is the distance in meters between the two starting tanks along +Z
	TankSeparation = 90.0
)
