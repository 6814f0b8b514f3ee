// Package chart implements the deterministic base-sequence generator for
// the Thai 7-Numbers-9-Bases system and the static label tables it and
// the meaning pipeline read. See docs/ARCHITECTURE.md § Chart Generator.
package chart

import (
	"github.com/mesh-intelligence/horasat/pkg/types"
)

// weekdayStart maps a Thai weekday label to its starting value 1..7.
// Sunday starts at 1 and the week ascends from there; the rotation of
// 1..7 beginning at the start value is the day base.
var weekdayStart = map[string]int{
	types.WeekdaySunday:    1,
	types.WeekdayMonday:    2,
	types.WeekdayTuesday:   3,
	types.WeekdayWednesday: 4,
	types.WeekdayThursday:  5,
	types.WeekdayFriday:    6,
	types.WeekdaySaturday:  7,
}

// weekdayByValue is the inverse of weekdayStart, indexed 1..7.
var weekdayByValue = [8]string{
	1: types.WeekdaySunday,
	2: types.WeekdayMonday,
	3: types.WeekdayTuesday,
	4: types.WeekdayWednesday,
	5: types.WeekdayThursday,
	6: types.WeekdayFriday,
	7: types.WeekdaySaturday,
}

// monthStart maps a calendar month 1..12 to the rotation start of the
// month base. This is the canonical table of the tradition, kept as data
// on purpose: July wraps back to 7 and August restarts at 1, which a
// naive mod-12 rotation formula does not reproduce.
var monthStart = [13]int{
	1:  1, // January
	2:  2,
	3:  3,
	4:  4,
	5:  5,
	6:  6,
	7:  7,
	8:  1, // August restarts the cycle
	9:  2,
	10: 3,
	11: 4,
	12: 5,
}

// zodiacEntry pairs a zodiac animal label with its traditional start
// number 1..12.
type zodiacEntry struct {
	animal string
	start  int
}

// zodiacByYearMod maps (Buddhist-era year mod 12) to the zodiac animal
// and its start number. The cycle anchors so that mod 0 is the Tiger.
var zodiacByYearMod = [12]zodiacEntry{
	0:  {"ขาล", 3},    // Tiger
	1:  {"เถาะ", 4},   // Rabbit
	2:  {"มะโรง", 5},  // Dragon
	3:  {"มะเส็ง", 6}, // Snake
	4:  {"มะเมีย", 7}, // Horse
	5:  {"มะแม", 8},   // Goat
	6:  {"วอก", 9},    // Monkey
	7:  {"ระกา", 10},  // Rooster
	8:  {"จอ", 11},    // Dog
	9:  {"กุน", 12},   // Pig
	10: {"ชวด", 1},    // Rat
	11: {"ฉลู", 2},    // Ox
}

// House labels per base, indexed by position 1..7. The sum base reuses
// the day-base labels.
var (
	dayLabels   = [types.PositionCount]string{"อัตตะ", "หินะ", "ธานัง", "ปิตา", "มาตา", "โภคา", "มัชฌิมา"}
	monthLabels = [types.PositionCount]string{"ตะนุ", "กดุมภะ", "สหัชชะ", "พันธุ", "ปุตตะ", "อริ", "ปัตนิ"}
	yearLabels  = [types.PositionCount]string{"มรณะ", "สุภะ", "กัมมะ", "ลาภะ", "พยายะ", "ทาสา", "ทาสี"}
)

// House types.
const (
	HouseTypeKalapak  = "กาลปักษ์"
	HouseTypeKenChata = "เกณฑ์ชะตา"
	HouseTypeJon      = "จร"
)

// Influence classifications derived from house type.
const (
	InfluenceGood    = "ดี"
	InfluenceNeutral = "กลาง"
	InfluenceBase    = "เดิม"
)

// houseInfo carries the Thai meaning and house type of a house label.
type houseInfo struct {
	meaning   string
	houseType string
}

// houseByLabel maps every house label to its meaning and type.
var houseByLabel = map[string]houseInfo{
	"กดุมภะ":  {"รายได้รายจ่าย", HouseTypeKalapak},
	"กัมมะ":   {"หน้าที่การงาน", HouseTypeKenChata},
	"ตะนุ":    {"ตัวท่านเอง", HouseTypeJon},
	"ทาสา":    {"เหน็จเหนื่อยเพื่อคนอื่น ส่วนรวม", HouseTypeKalapak},
	"ทาสี":    {"การเหน็จเหนื่อยเพื่อตัวเอง", HouseTypeKenChata},
	"ธานัง":   {"เรื่องเงิน ๆ ทอง ๆ", HouseTypeJon},
	"ปัตนิ":   {"คู่ครอง", HouseTypeKalapak},
	"ปิตา":    {"พ่อหรือผู้ใหญ่ เรื่องนอกบ้าน", HouseTypeKenChata},
	"ปุตตะ":   {"เรื่องลูก การเริ่มต้น", HouseTypeJon},
	"พยายะ":   {"สิ่งไม่ดี เรื่องปิดบัง ซ่อนเร้น", HouseTypeKalapak},
	"พันธุ":   {"ญาติพี่น้อง", HouseTypeKenChata},
	"มรณะ":    {"เรื่องเจ็บป่วย", HouseTypeKalapak},
	"มัชฌิมา": {"เรื่องกลาง ๆ ไม่หนักหนา", HouseTypeKalapak},
	"มาตา":    {"แม่หรือผู้ใหญ่ เรื่องในบ้าน เรื่องส่วนตัว", HouseTypeKenChata},
	"ลาภะ":    {"ลาภยศ โชคลาภ", HouseTypeJon},
	"สหัชชะ":  {"เพื่อนฝูง การติดต่อ", HouseTypeKalapak},
	"สุภะ":    {"ความเจริญรุ่งเรือง", HouseTypeKenChata},
	"หินะ":    {"ความผิดหวัง", HouseTypeKalapak},
	"อริ":     {"ปัญหา อุปสรรค", HouseTypeKalapak},
	"อัตตะ":   {"ตัวท่านเอง", HouseTypeKalapak},
	"โภคา":    {"สินทรัพย์", HouseTypeJon},
}

// sumNames maps the sum-base values that carry a traditional name.
var sumNames = map[int]string{
	7:  "ภาคินี",
	10: "ลาภี",
	11: "ราชาโชค",
	12: "ราชู",
	13: "มหาจร",
	15: "จันทร์",
	16: "โลกบาลก",
}

// Tables is the immutable label/rotation configuration shared by the
// generator, the attribute extractor, and the pipeline. Build one with
// NewTables at startup and share it read-only; it is safe for concurrent
// use.
type Tables struct {
	labels [types.BaseCount + 1][types.PositionCount]string

	// labelIndex resolves a house label back to its (base, position).
	// Labels are unique across bases 1-3; base 4 aliases base 1 and is
	// not indexed separately.
	labelIndex map[string]labelPos
}

type labelPos struct {
	base     int
	position int
}

// NewTables builds the shared table set.
func NewTables() *Tables {
	t := &Tables{labelIndex: make(map[string]labelPos, 3*types.PositionCount)}
	t.labels[types.BaseDay] = dayLabels
	t.labels[types.BaseMonth] = monthLabels
	t.labels[types.BaseYear] = yearLabels
	t.labels[types.BaseSum] = dayLabels

	for base := types.BaseDay; base <= types.BaseYear; base++ {
		for i, label := range t.labels[base] {
			t.labelIndex[label] = labelPos{base: base, position: i + 1}
		}
	}
	return t
}

// LabelFor returns the house label for a 1-based (base, position) pair.
// The sum base shares the day base's labels.
func (t *Tables) LabelFor(base, position int) (string, error) {
	if base < types.BaseDay || base > types.BaseSum {
		return "", types.ErrInvalidBase
	}
	if position < 1 || position > types.PositionCount {
		return "", types.ErrInvalidPosition
	}
	return t.labels[base][position-1], nil
}

// LookupLabel resolves a house label to its (base, position) pair.
// Base-4 aliases resolve to base 1.
func (t *Tables) LookupLabel(label string) (base, position int, ok bool) {
	lp, ok := t.labelIndex[label]
	if !ok {
		return 0, 0, false
	}
	return lp.base, lp.position, true
}

// MeaningFor returns the Thai meaning of a house label, or "" when the
// label is unknown.
func (t *Tables) MeaningFor(label string) string {
	return houseByLabel[label].meaning
}

// HouseTypeFor returns the house type of a label, or "" when unknown.
func (t *Tables) HouseTypeFor(label string) string {
	return houseByLabel[label].houseType
}

// InfluenceFor classifies a house label's influence from its house type.
func (t *Tables) InfluenceFor(label string) string {
	switch t.HouseTypeFor(label) {
	case HouseTypeKalapak:
		return InfluenceGood
	case HouseTypeKenChata, HouseTypeJon:
		return InfluenceNeutral
	default:
		return InfluenceBase
	}
}

// SumName returns the traditional name for a sum-base value, or "" when
// the value carries none.
func (t *Tables) SumName(value int) string {
	return sumNames[value]
}

// WeekdayStart returns the starting value for a Thai weekday label.
func (t *Tables) WeekdayStart(label string) (int, bool) {
	v, ok := weekdayStart[label]
	return v, ok
}

// WeekdayLabel returns the Thai label for a starting value 1..7.
func (t *Tables) WeekdayLabel(value int) (string, bool) {
	if value < 1 || value > 7 {
		return "", false
	}
	return weekdayByValue[value], true
}

// MonthStart returns the rotation start for a calendar month 1..12.
func (t *Tables) MonthStart(month int) (int, bool) {
	if month < 1 || month > 12 {
		return 0, false
	}
	return monthStart[month], true
}

// Zodiac returns the zodiac animal and its start number for a
// Buddhist-era year.
func (t *Tables) Zodiac(buddhistYear int) (animal string, start int) {
	e := zodiacByYearMod[((buddhistYear%12)+12)%12]
	return e.animal, e.start
}
