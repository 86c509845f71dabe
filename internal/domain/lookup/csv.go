package lookup

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
)

// Lookup CSV file names, as shipped alongside the binary.
const (
	teamNameFile  = "mlbteamnamechange.csv"
	leagueFile    = "LeagueLevels.csv"
	affiliateFile = "Team_Affiliates.csv"
	playerIDFile  = "IDLookupTable.csv"
	movementFile  = "pitchmovement25.csv"
	qualityFile   = "lsaclass.csv"
)

// LoadDir reads every lookup CSV from dir and builds the Tables.
func LoadDir(dir string) (*Tables, error) {
	teamNames, err := loadStringPairs(filepath.Join(dir, teamNameFile), "Full", "Abbrev")
	if err != nil {
		return nil, err
	}
	levels, err := loadStringPairs(filepath.Join(dir, leagueFile), "league_name", "level")
	if err != nil {
		return nil, err
	}
	parent, abbrev, teamAbbrevs, err := loadAffiliates(filepath.Join(dir, affiliateFile))
	if err != nil {
		return nil, err
	}
	players, err := loadPlayerIDs(filepath.Join(dir, playerIDFile))
	if err != nil {
		return nil, err
	}
	movement, err := loadMovement(filepath.Join(dir, movementFile))
	if err != nil {
		return nil, err
	}
	quality, err := loadQuality(filepath.Join(dir, qualityFile))
	if err != nil {
		return nil, err
	}

	return NewTables(
		WithTeamNames(teamNames),
		WithLeagueLevels(levels),
		WithAffiliates(parent, abbrev),
		WithTeamAbbrevs(teamAbbrevs),
		WithPlayerNames(players),
		WithMovement(movement),
		WithQuality(quality),
	), nil
}

// readCSV returns the header index and data rows of a CSV file.
func readCSV(path string) (map[string]int, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrLoadTable, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrLoadTable, filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%w: %s: empty file", ErrLoadTable, filepath.Base(path))
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[name] = i
	}
	return header, records[1:], nil
}

func field(header map[string]int, row []string, name string) (string, bool) {
	idx, ok := header[name]
	if !ok || idx >= len(row) {
		return "", false
	}
	return row[idx], true
}

func loadStringPairs(path, keyCol, valCol string) (map[string]string, error) {
	header, rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		key, ok1 := field(header, row, keyCol)
		val, ok2 := field(header, row, valCol)
		if ok1 && ok2 && key != "" {
			out[key] = val
		}
	}
	return out, nil
}

func loadAffiliates(path string) (map[int]int, map[int]string, map[string]string, error) {
	header, rows, err := readCSV(path)
	if err != nil {
		return nil, nil, nil, err
	}
	parent := make(map[int]int, len(rows))
	abbrev := make(map[int]string, len(rows))
	teamAbbrevs := make(map[string]string, len(rows))
	for _, row := range rows {
		idStr, _ := field(header, row, "team_id")
		parentStr, _ := field(header, row, "parent_id")
		id, err1 := strconv.Atoi(idStr)
		pid, err2 := strconv.Atoi(parentStr)
		if err1 != nil || err2 != nil {
			continue
		}
		parent[id] = pid
		if pa, ok := field(header, row, "parent_abbrev"); ok {
			abbrev[pid] = pa
		}
		name, ok1 := field(header, row, "team_name")
		ta, ok2 := field(header, row, "team_abbrev")
		if ok1 && ok2 && name != "" {
			teamAbbrevs[name] = ta
		}
	}
	return parent, abbrev, teamAbbrevs, nil
}

func loadPlayerIDs(path string) (map[int]string, error) {
	header, rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	out := make(map[int]string, len(rows))
	for _, row := range rows {
		idStr, _ := field(header, row, "MLBID")
		name, _ := field(header, row, "PLAYERNAME")
		id, convErr := strconv.Atoi(idStr)
		if convErr != nil || name == "" {
			continue
		}
		out[id] = name
	}
	return out, nil
}

func loadMovement(path string) (map[MovementKey]Movement, error) {
	header, rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	out := make(map[MovementKey]Movement, len(rows))
	for _, row := range rows {
		pitcher, _ := field(header, row, "player_name")
		pitch, _ := field(header, row, "pitch_type")
		if pitcher == "" || pitch == "" {
			continue
		}
		velo, _ := field(header, row, "release_speed")
		horiz, _ := field(header, row, "pfx_x")
		vert, _ := field(header, row, "pfx_z")
		v, err1 := strconv.ParseFloat(velo, 64)
		hx, err2 := strconv.ParseFloat(horiz, 64)
		vz, err3 := strconv.ParseFloat(vert, 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		out[MovementKey{Pitcher: pitcher, Pitch: pitch}] = Movement{
			AvgVelo:  v,
			AvgHoriz: hx,
			AvgVert:  vz,
		}
	}
	return out, nil
}

func loadQuality(path string) (map[QualityKey]int, error) {
	header, rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	out := make(map[QualityKey]int, len(rows))
	for _, row := range rows {
		speedStr, _ := field(header, row, "launch_speed")
		angleStr, _ := field(header, row, "launch_angle")
		tierStr, _ := field(header, row, "launch_speed_angle")
		speed, err1 := strconv.ParseFloat(speedStr, 64)
		angle, err2 := strconv.ParseFloat(angleStr, 64)
		tier, err3 := strconv.Atoi(tierStr)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		// Keys are rounded to whole numbers to match the join columns.
		out[QualityKey{Speed: math.Round(speed), Angle: math.Round(angle)}] = tier
	}
	return out, nil
}
