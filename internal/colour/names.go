package colour

// Named colours from the engine's standard palette, packed ARGB.
const (
	TransparentBlack     Colour = 0
	TransparentWhite     Colour = 0xffffff
	AliceBlue            Colour = 0xfff0f8ff
	AntiqueWhite         Colour = 0xfffaebd7
	Aqua                 Colour = 0xff00ffff
	Aquamarine           Colour = 0xff7fffd4
	Azure                Colour = 0xfff0ffff
	Beige                Colour = 0xfff5f5dc
	Bisque               Colour = 0xffffe4c4
	Black                Colour = 0xff000000
	BlanchedAlmond       Colour = 0xffffebcd
	Blue                 Colour = 0xff0000ff
	BlueViolet           Colour = 0xff8a2be2
	Brown                Colour = 0xffa52a2a
	BurlyWood            Colour = 0xffdeb887
	CadetBlue            Colour = 0xff5f9ea0
	Chartreuse           Colour = 0xff7fff00
	Chocolate            Colour = 0xffd2691e
	Coral                Colour = 0xffff7f50
	CornflowerBlue       Colour = 0xff6495ed
	Cornsilk             Colour = 0xfffff8dc
	Crimson              Colour = 0xffdc143c
	Cyan                 Colour = 0xff00ffff
	DarkBlue             Colour = 0xff00008b
	DarkCyan             Colour = 0xff008b8b
	DarkGoldenrod        Colour = 0xffb8860b
	DarkGray             Colour = 0xffa9a9a9
	DarkGreen            Colour = 0xff006400
	DarkKhaki            Colour = 0xffbdb76b
	DarkMagenta          Colour = 0xff8b008b
	DarkOliveGreen       Colour = 0xff556b2f
	DarkOrange           Colour = 0xffff8c00
	DarkOrchid           Colour = 0xff9932cc
	DarkRed              Colour = 0xff8b0000
	DarkSalmon           Colour = 0xffe9967a
	DarkSeaGreen         Colour = 0xff8fbc8b
	DarkSlateBlue        Colour = 0xff483d8b
	DarkSlateGray        Colour = 0xff2f4f4f
	DarkTurquoise        Colour = 0xff00ced1
	DarkViolet           Colour = 0xff9400d3
	DeepPink             Colour = 0xffff1493
	DeepSkyBlue          Colour = 0xff00bfff
	DimGray              Colour = 0xff696969
	DodgerBlue           Colour = 0xff1e90ff
	Firebrick            Colour = 0xffb22222
	FloralWhite          Colour = 0xfffffaf0
	ForestGreen          Colour = 0xff228b22
	Fuchsia              Colour = 0xffff00ff
	Gainsboro            Colour = 0xffdcdcdc
	GhostWhite           Colour = 0xfff8f8ff
	Gold                 Colour = 0xffffd700
	Goldenrod            Colour = 0xffdaa520
	Gray                 Colour = 0xff808080
	Green                Colour = 0xff008000
	GreenYellow          Colour = 0xffadff2f
	Honeydew             Colour = 0xfff0fff0
	HotPink              Colour = 0xffff69b4
	IndianRed            Colour = 0xffcd5c5c
	Indigo               Colour = 0xff4b0082
	Ivory                Colour = 0xfffffff0
	Khaki                Colour = 0xfff0e68c
	Lavender             Colour = 0xffe6e6fa
	LavenderBlush        Colour = 0xfffff0f5
	LawnGreen            Colour = 0xff7cfc00
	LemonChiffon         Colour = 0xfffffacd
	LightBlue            Colour = 0xffadd8e6
	LightCoral           Colour = 0xfff08080
	LightCyan            Colour = 0xffe0ffff
	LightGoldenrodYellow Colour = 0xfffafad2
	LightGreen           Colour = 0xff90ee90
	LightGray            Colour = 0xffd3d3d3
	LightPink            Colour = 0xffffb6c1
	LightSalmon          Colour = 0xffffa07a
	LightSeaGreen        Colour = 0xff20b2aa
	LightSkyBlue         Colour = 0xff87cefa
	LightSlateGray       Colour = 0xff778899
	LightSteelBlue       Colour = 0xffb0c4de
	LightYellow          Colour = 0xffffffe0
	Lime                 Colour = 0xff00ff00
	LimeGreen            Colour = 0xff32cd32
	Linen                Colour = 0xfffaf0e6
	Magenta              Colour = 0xffff00ff
	Maroon               Colour = 0xff800000
	MediumAquamarine     Colour = 0xff66cdaa
	MediumBlue           Colour = 0xff0000cd
	MediumOrchid         Colour = 0xffba55d3
	MediumPurple         Colour = 0xff9370db
	MediumSeaGreen       Colour = 0xff3cb371
	MediumSlateBlue      Colour = 0xff7b68ee
	MediumSpringGreen    Colour = 0xff00fa9a
	MediumTurquoise      Colour = 0xff48d1cc
	MediumVioletRed      Colour = 0xffc71585
	MidnightBlue         Colour = 0xff191970
	MintCream            Colour = 0xfff5fffa
	MistyRose            Colour = 0xffffe4e1
	Moccasin             Colour = 0xffffe4b5
	NavajoWhite          Colour = 0xffffdead
	Navy                 Colour = 0xff000080
	OldLace              Colour = 0xfffdf5e6
	Olive                Colour = 0xff808000
	OliveDrab            Colour = 0xff6b8e23
	Orange               Colour = 0xffffa500
	OrangeRed            Colour = 0xffff4500
	Orchid               Colour = 0xffda70d6
	PaleGoldenrod        Colour = 0xffeee8aa
	PaleGreen            Colour = 0xff98fb98
	PaleTurquoise        Colour = 0xffafeeee
	PaleVioletRed        Colour = 0xffdb7093
	PapayaWhip           Colour = 0xffffefd5
	PeachPuff            Colour = 0xffffdab9
	Peru                 Colour = 0xffcd853f
	Pink                 Colour = 0xffffc0cb
	Plum                 Colour = 0xffdda0dd
	PowderBlue           Colour = 0xffb0e0e6
	Purple               Colour = 0xff800080
	Red                  Colour = 0xffff0000
	RosyBrown            Colour = 0xffbc8f8f
	RoyalBlue            Colour = 0xff4169e1
	SaddleBrown          Colour = 0xff8b4513
	Salmon               Colour = 0xfffa8072
	SandyBrown           Colour = 0xfff4a460
	SeaGreen             Colour = 0xff2e8b57
	SeaShell             Colour = 0xfffff5ee
	Sienna               Colour = 0xffa0522d
	Silver               Colour = 0xffc0c0c0
	SkyBlue              Colour = 0xff87ceeb
	SlateBlue            Colour = 0xff6a5acd
	SlateGray            Colour = 0xff708090
	Snow                 Colour = 0xfffffafa
	SpringGreen          Colour = 0xff00ff7f
	SteelBlue            Colour = 0xff4682b4
	Tan                  Colour = 0xffd2b48c
	Teal                 Colour = 0xff008080
	Thistle              Colour = 0xffd8bfd8
	Tomato               Colour = 0xffff6347
	Turquoise            Colour = 0xff40e0d0
	Violet               Colour = 0xffee82ee
	Wheat                Colour = 0xfff5deb3
	White                Colour = 0xffffffff
	WhiteSmoke           Colour = 0xfff5f5f5
	Yellow               Colour = 0xffffff00
	YellowGreen          Colour = 0xff9acd32
)

// names maps data-file colour names to their constants.
var names = map[string]Colour{
	"transparent_black": TransparentBlack,
	"transparent_white": TransparentWhite,
	"alice_blue": AliceBlue,
	"antique_white": AntiqueWhite,
	"aqua": Aqua,
	"aquamarine": Aquamarine,
	"azure": Azure,
	"beige": Beige,
	"bisque": Bisque,
	"black": Black,
	"blanched_almond": BlanchedAlmond,
	"blue": Blue,
	"blue_violet": BlueViolet,
	"brown": Brown,
	"burly_wood": BurlyWood,
	"cadet_blue": CadetBlue,
	"chartreuse": Chartreuse,
	"chocolate": Chocolate,
	"coral": Coral,
	"cornflower_blue": CornflowerBlue,
	"cornsilk": Cornsilk,
	"crimson": Crimson,
	"cyan": Cyan,
	"dark_blue": DarkBlue,
	"dark_cyan": DarkCyan,
	"dark_goldenrod": DarkGoldenrod,
	"dark_gray": DarkGray,
	"dark_green": DarkGreen,
	"dark_khaki": DarkKhaki,
	"dark_magenta": DarkMagenta,
	"dark_olive_green": DarkOliveGreen,
	"dark_orange": DarkOrange,
	"dark_orchid": DarkOrchid,
	"dark_red": DarkRed,
	"dark_salmon": DarkSalmon,
	"dark_sea_green": DarkSeaGreen,
	"dark_slate_blue": DarkSlateBlue,
	"dark_slate_gray": DarkSlateGray,
	"dark_turquoise": DarkTurquoise,
	"dark_violet": DarkViolet,
	"deep_pink": DeepPink,
	"deep_sky_blue": DeepSkyBlue,
	"dim_gray": DimGray,
	"dodger_blue": DodgerBlue,
	"firebrick": Firebrick,
	"floral_white": FloralWhite,
	"forest_green": ForestGreen,
	"fuchsia": Fuchsia,
	"gainsboro": Gainsboro,
	"ghost_white": GhostWhite,
	"gold": Gold,
	"goldenrod": Goldenrod,
	"gray": Gray,
	"green": Green,
	"green_yellow": GreenYellow,
	"honeydew": Honeydew,
	"hot_pink": HotPink,
	"indian_red": IndianRed,
	"indigo": Indigo,
	"ivory": Ivory,
	"khaki": Khaki,
	"lavender": Lavender,
	"lavender_blush": LavenderBlush,
	"lawn_green": LawnGreen,
	"lemon_chiffon": LemonChiffon,
	"light_blue": LightBlue,
	"light_coral": LightCoral,
	"light_cyan": LightCyan,
	"light_goldenrod_yellow": LightGoldenrodYellow,
	"light_green": LightGreen,
	"light_gray": LightGray,
	"light_pink": LightPink,
	"light_salmon": LightSalmon,
	"light_sea_green": LightSeaGreen,
	"light_sky_blue": LightSkyBlue,
	"light_slate_gray": LightSlateGray,
	"light_steel_blue": LightSteelBlue,
	"light_yellow": LightYellow,
	"lime": Lime,
	"lime_green": LimeGreen,
	"linen": Linen,
	"magenta": Magenta,
	"maroon": Maroon,
	"medium_aquamarine": MediumAquamarine,
	"medium_blue": MediumBlue,
	"medium_orchid": MediumOrchid,
	"medium_purple": MediumPurple,
	"medium_sea_green": MediumSeaGreen,
	"medium_slate_blue": MediumSlateBlue,
	"medium_spring_green": MediumSpringGreen,
	"medium_turquoise": MediumTurquoise,
	"medium_violet_red": MediumVioletRed,
	"midnight_blue": MidnightBlue,
	"mint_cream": MintCream,
	"misty_rose": MistyRose,
	"moccasin": Moccasin,
	"navajo_white": NavajoWhite,
	"navy": Navy,
	"old_lace": OldLace,
	"olive": Olive,
	"olive_drab": OliveDrab,
	"orange": Orange,
	"orange_red": OrangeRed,
	"orchid": Orchid,
	"pale_goldenrod": PaleGoldenrod,
	"pale_green": PaleGreen,
	"pale_turquoise": PaleTurquoise,
	"pale_violet_red": PaleVioletRed,
	"papaya_whip": PapayaWhip,
	"peach_puff": PeachPuff,
	"peru": Peru,
	"pink": Pink,
	"plum": Plum,
	"powder_blue": PowderBlue,
	"purple": Purple,
	"red": Red,
	"rosy_brown": RosyBrown,
	"royal_blue": RoyalBlue,
	"saddle_brown": SaddleBrown,
	"salmon": Salmon,
	"sandy_brown": SandyBrown,
	"sea_green": SeaGreen,
	"sea_shell": SeaShell,
	"sienna": Sienna,
	"silver": Silver,
	"sky_blue": SkyBlue,
	"slate_blue": SlateBlue,
	"slate_gray": SlateGray,
	"snow": Snow,
	"spring_green": SpringGreen,
	"steel_blue": SteelBlue,
	"tan": Tan,
	"teal": Teal,
	"thistle": Thistle,
	"tomato": Tomato,
	"turquoise": Turquoise,
	"violet": Violet,
	"wheat": Wheat,
	"white": White,
	"white_smoke": WhiteSmoke,
	"yellow": Yellow,
	"yellow_green": YellowGreen,
}
