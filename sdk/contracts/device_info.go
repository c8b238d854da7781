package contracts

// DeviceInfo describes a single MIDI port as reported by the platform driver.
type DeviceInfo struct {
	Name         string // Port name, used to open the device.
	Manufacturer string // Device manufacturer, when the driver reports one.
	EntityName   string // Name of the entity the port belongs to.
}
