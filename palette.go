// palette.go - the Plus/4's 128-entry RGB palette.
//
// The host owns the actual RGB values; this table is the default mapping
// used when no other palette is supplied, sourced from the reference
// emulator palette used across the Plus/4 preservation community.

package main

import "image/color"

func defaultPalette() [128]color.RGBA {
	rgb := [128][3]byte{
		{0, 0, 0}, {44, 44, 44}, {98, 19, 7}, {0, 66, 67},
		{81, 3, 120}, {0, 78, 0}, {39, 24, 142}, {48, 62, 0},
		{88, 33, 0}, {70, 48, 0}, {36, 68, 0}, {99, 4, 72},
		{0, 78, 12}, {14, 39, 132}, {51, 17, 142}, {24, 72, 0},

		{0, 0, 0}, {59, 59, 59}, {112, 36, 25}, {0, 80, 90},
		{96, 22, 133}, {18, 93, 0}, {54, 40, 155}, {63, 76, 0},
		{102, 49, 0}, {85, 63, 0}, {52, 82, 0}, {113, 22, 86},
		{0, 92, 29}, {31, 54, 145}, {66, 34, 155}, {40, 87, 0},

		{119, 119, 119}, {154, 59, 48}, {75, 137, 113}, {138, 43, 156},
		{60, 150, 20}, {96, 100, 178}, {105, 133, 0}, {144, 106, 0},
		{127, 120, 0}, {93, 140, 0}, {155, 65, 109}, {51, 149, 53},
		{73, 111, 169}, {108, 95, 178}, {82, 144, 0}, {0, 0, 0},

		{44, 44, 44}, {98, 19, 7}, {0, 66, 67}, {81, 3, 120},
		{0, 78, 0}, {39, 24, 142}, {48, 62, 0}, {88, 33, 0},
		{70, 48, 0}, {36, 68, 0}, {99, 4, 72}, {0, 78, 12},
		{14, 39, 132}, {51, 17, 142}, {24, 72, 0}, {59, 59, 59},

		{112, 36, 25}, {0, 80, 90}, {96, 22, 133}, {18, 93, 0},
		{54, 40, 155}, {63, 76, 0}, {102, 49, 0}, {85, 63, 0},
		{52, 82, 0}, {113, 22, 86}, {0, 92, 29}, {31, 54, 145},
		{66, 34, 155}, {40, 87, 0}, {119, 119, 119}, {154, 59, 48},

		{75, 137, 113}, {138, 43, 156}, {60, 150, 20}, {96, 100, 178},
		{105, 133, 0}, {144, 106, 0}, {127, 120, 0}, {93, 140, 0},
		{155, 65, 109}, {51, 149, 53}, {73, 111, 169}, {108, 95, 178},
		{82, 144, 0}, {178, 178, 178}, {212, 124, 107}, {134, 195, 171},

		{197, 107, 214}, {120, 208, 79}, {155, 164, 237}, {164, 192, 45},
		{203, 170, 0}, {186, 179, 0}, {152, 198, 16}, {214, 129, 167},
		{111, 208, 111}, {133, 170, 227}, {168, 158, 237}, {142, 203, 41},
		{237, 237, 237}, {255, 189, 166}, {194, 255, 230}, {255, 172, 255},

		{180, 255, 138}, {215, 229, 255}, {224, 255, 105}, {255, 235, 59},
		{245, 244, 59}, {212, 255, 76}, {255, 194, 227}, {171, 255, 171},
		{193, 235, 255}, {228, 223, 255}, {202, 255, 101}, {255, 255, 255},
		{255, 255, 255}, {255, 255, 255}, {255, 255, 255}, {255, 255, 255},
	}

	var p [128]color.RGBA
	for i, v := range rgb {
		p[i] = color.RGBA{R: v[0], G: v[1], B: v[2], A: 0xFF}
	}
	return p
}
