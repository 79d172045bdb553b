// internal/status/constants.go
package status

// Link Status Block layout constants.
// These values define the mirror protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerBlock is the fixed number of holding registers per transmitter.
const SlotsPerBlock = 20

// ---- SLOT INDICES ----

// SlotHealthCode holds the link health state.
const SlotHealthCode = 0

// SlotLastErrorCode holds the last transport error code.
const SlotLastErrorCode = 1

// SlotSecondsInError holds the duration (in seconds) the link has been in error.
const SlotSecondsInError = 2

// SlotFramesHi and SlotFramesLo hold the 32-bit sent-frame counter.
const SlotFramesHi = 3
const SlotFramesLo = 4

// SlotFrameStart is the first of 4 registers holding the last frame,
// two bytes per register, big-endian, final low byte zero.
const SlotFrameStart = 5
const SlotFrameSlots = 4

// SlotTimestamp holds the last frame's 3-bit timestamp.
const SlotTimestamp = 9

// Slot 10 is reserved.
const SlotReserved = 10

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the transmitter name.
const SlotDeviceNameStart = 11

// SlotDeviceNameSlots is the number of slots reserved for the name.
const SlotDeviceNameSlots = 8

// SlotDeviceNameEnd is the last slot used for the name (inclusive).
const SlotDeviceNameEnd = SlotDeviceNameStart + SlotDeviceNameSlots - 1

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored for the name.
const DeviceNameMaxChars = 16

// SecondsInErrorMax is where the error counter saturates. It MUST NOT wrap.
const SecondsInErrorMax = 65535

// ---- HEALTH CODES ----

// HealthUnknown represents the boot state before the first frame.
const HealthUnknown uint16 = 0

// HealthOK represents a link sending frames normally.
const HealthOK uint16 = 1

// HealthError represents a failed serial write.
const HealthError uint16 = 2

// HealthEstop represents a healthy link commanding ESTOP.
const HealthEstop uint16 = 3
