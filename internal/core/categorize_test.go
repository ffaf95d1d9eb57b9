package core

import "testing"

func TestCategorize(t *testing.T) {
	cases := []struct {
		desc string
		want Category
	}{
		{"groceries", CategoryFood},
		{"lunch at the cafe", CategoryFood},
		{"monthly rent", CategoryHousing},
		{"uber to the airport", CategoryTransport},
		{"netflix subscription", CategoryEntertainment},
		{"new shoes from amazon", CategoryShopping},
		{"pharmacy prescription", CategoryHealthcare},
		{"university tuition", CategoryEducation},
		{"mystery payment", CategoryOther},
		{"", CategoryOther},
	}
	for i, tc := range cases {
		if got := Categorize(tc.desc); got != tc.want {
			t.Fatalf("case %d: Categorize(%q) = %q, want %q", i, tc.desc, got, tc.want)
		}
	}
}

func TestCategorizeMostMatchesWins(t *testing.T) {
	// "gas" alone hits transport, but two housing keywords outweigh it.
	if got := Categorize("gas bill for the apartment"); got != CategoryHousing {
		t.Fatalf("got %q, want housing", got)
	}
}
