package lookup

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func writeTables(t *testing.T, dir string) {
	t.Helper()
	writeFile(t, dir, teamNameFile,
		"Full,Abbrev\nNew York Yankees,NYY\nBoston Red Sox,BOS\n")
	writeFile(t, dir, leagueFile,
		"league_name,level\nAmerican League,MLB\nInternational League,AAA\n")
	writeFile(t, dir, affiliateFile,
		"team_id,team_name,team_abbrev,parent_id,parent_abbrev\n"+
			"531,Scranton RailRiders,SWB,147,NYY\n"+
			"147,New York Yankees,NYY,147,NYY\n")
	writeFile(t, dir, playerIDFile,
		"MLBID,PLAYERNAME\n701,Ace Arm\n601,Lead Off\n")
	writeFile(t, dir, movementFile,
		"player_name,pitch_type,release_speed,pfx_x,pfx_z\n"+
			"Ace Arm,SL,85.1,4.2,1.3\n")
	writeFile(t, dir, qualityFile,
		"launch_speed,launch_angle,launch_speed_angle\n"+
			"104.7,28.2,6\n"+
			"98.0,12.0,5\n")
}

func TestLoadDir(t *testing.T) {
	Convey("Given a directory with every lookup file", t, func() {
		dir := t.TempDir()
		writeTables(t, dir)

		Convey("When the tables are loaded", func() {
			tables, err := LoadDir(dir)
			So(err, ShouldBeNil)

			Convey("Then team names normalize", func() {
				So(tables.NormalizeTeam("New York Yankees"), ShouldEqual, "NYY")
				So(tables.NormalizeTeam("Unknown Nine"), ShouldEqual, "Unknown Nine")
			})

			Convey("Then league levels resolve", func() {
				So(tables.Level("International League"), ShouldEqual, "AAA")
				So(tables.Level("Mystery League"), ShouldEqual, "")
			})

			Convey("Then affiliates resolve through the parent org", func() {
				id, abbrev, ok := tables.ParentOrg(531)
				So(ok, ShouldBeTrue)
				So(id, ShouldEqual, 147)
				So(abbrev, ShouldEqual, "NYY")

				_, _, ok = tables.ParentOrg(999)
				So(ok, ShouldBeFalse)
			})

			Convey("Then player names resolve by id", func() {
				So(tables.PlayerName(701), ShouldEqual, "Ace Arm")
				So(tables.PlayerName(999), ShouldEqual, "")
			})

			Convey("Then movement baselines resolve by pitcher and type code", func() {
				m, ok := tables.MovementBaseline("Ace Arm", "SL")
				So(ok, ShouldBeTrue)
				So(m.AvgVelo, ShouldEqual, 85.1)

				_, ok = tables.MovementBaseline("Ace Arm", "CH")
				So(ok, ShouldBeFalse)
			})

			Convey("Then quality rows join on rounded readings", func() {
				tier, ok := tables.QualityTier(105, 28)
				So(ok, ShouldBeTrue)
				So(tier, ShouldEqual, 6)

				_, ok = tables.QualityTier(105, 29)
				So(ok, ShouldBeFalse)
			})
		})
	})

	Convey("Given a directory missing a lookup file", t, func() {
		dir := t.TempDir()

		Convey("When the tables are loaded", func() {
			_, err := LoadDir(dir)

			Convey("Then the load error is reported", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "lookup")
			})
		})
	})

	Convey("Given rows with unparseable values", t, func() {
		dir := t.TempDir()
		writeTables(t, dir)
		writeFile(t, dir, affiliateFile,
			"team_id,team_name,team_abbrev,parent_id,parent_abbrev\n"+
				"not-a-number,Bad Row,BAD,147,NYY\n"+
				"531,Scranton RailRiders,SWB,147,NYY\n")

		Convey("When the tables are loaded", func() {
			tables, err := LoadDir(dir)

			Convey("Then bad rows are skipped, not fatal", func() {
				So(err, ShouldBeNil)
				_, _, ok := tables.ParentOrg(531)
				So(ok, ShouldBeTrue)
			})
		})
	})
}
