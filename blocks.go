package blockbuilder

// Block identifies one member of the block palette.
type Block uint16

const (
	// Air is the empty sentinel: no reference color, no sprite, never matched.
	Air Block = iota
	Stone
	Granite
	PolishedGranite
	Diorite
	PolishedDiorite
	Andesite
	PolishedAndesite
	Deepslate
	CobbledDeepslate
	Calcite
	Tuff
	DripstoneBlock
	Dirt
	CoarseDirt
	Cobblestone
	OakPlanks
	SprucePlanks
	BirchPlanks
	JunglePlanks
	AcaciaPlanks
	DarkOakPlanks
	MangrovePlanks
	CherryPlanks
	CrimsonPlanks
	WarpedPlanks
	Sand
	RedSand
	Gravel
	Clay
	Mud
	PackedMud
	MudBricks
	MossBlock
	Bricks
	Sandstone
	RedSandstone
	Terracotta
	SnowBlock
	Netherrack
	NetherBricks
	RedNetherBricks
	NetherWartBlock
	WarpedWartBlock
	SoulSand
	Glowstone
	Shroomlight
	Blackstone
	Obsidian
	EndStone
	PurpurBlock
	Prismarine
	PrismarineBricks
	DarkPrismarine
	SeaLantern
	AmethystBlock
	HoneycombBlock
	CoalBlock
	IronBlock
	GoldBlock
	RedstoneBlock
	EmeraldBlock
	LapisBlock
	DiamondBlock
	CopperBlock
	OxidizedCopper
	RawIronBlock
	RawGoldBlock
	RawCopperBlock
	WhiteWool
	OrangeWool
	MagentaWool
	LightBlueWool
	YellowWool
	LimeWool
	PinkWool
	GrayWool
	LightGrayWool
	CyanWool
	PurpleWool
	BlueWool
	BrownWool
	GreenWool
	RedWool
	BlackWool
	WhiteConcrete
	OrangeConcrete
	MagentaConcrete
	LightBlueConcrete
	YellowConcrete
	LimeConcrete
	PinkConcrete
	GrayConcrete
	LightGrayConcrete
	CyanConcrete
	PurpleConcrete
	BlueConcrete
	BrownConcrete
	GreenConcrete
	RedConcrete
	BlackConcrete
	WhiteTerracotta
	OrangeTerracotta
	MagentaTerracotta
	LightBlueTerracotta
	YellowTerracotta
	LimeTerracotta
	PinkTerracotta
	GrayTerracotta
	LightGrayTerracotta
	CyanTerracotta
	PurpleTerracotta
	BlueTerracotta
	BrownTerracotta
	GreenTerracotta
	RedTerracotta
	BlackTerracotta

	numBlocks
)

type blockInfo struct {
	name    string
	sprite  string
	color   Color
	// colored is false for blocks that are placeable but never matched.
	colored bool
}

// Reference colors are sRGB averages of the opaque texels of each 1.20.1
// block texture.
var blockTable = [numBlocks]blockInfo{
	Air:                 {name: "air"},
	Stone:               {"stone", "stone.png", Color{125, 125, 125}, true},
	Granite:             {"granite", "granite.png", Color{149, 103, 85}, true},
	PolishedGranite:     {"polished_granite", "polished_granite.png", Color{154, 106, 89}, true},
	Diorite:             {"diorite", "diorite.png", Color{188, 188, 188}, true},
	PolishedDiorite:     {"polished_diorite", "polished_diorite.png", Color{192, 193, 194}, true},
	Andesite:            {"andesite", "andesite.png", Color{136, 136, 136}, true},
	PolishedAndesite:    {"polished_andesite", "polished_andesite.png", Color{132, 134, 133}, true},
	Deepslate:           {"deepslate", "deepslate.png", Color{80, 80, 82}, true},
	CobbledDeepslate:    {"cobbled_deepslate", "cobbled_deepslate.png", Color{77, 77, 80}, true},
	Calcite:             {"calcite", "calcite.png", Color{223, 224, 220}, true},
	Tuff:                {"tuff", "tuff.png", Color{108, 109, 102}, true},
	DripstoneBlock:      {"dripstone_block", "dripstone_block.png", Color{134, 107, 92}, true},
	Dirt:                {"dirt", "dirt.png", Color{134, 96, 67}, true},
	CoarseDirt:          {"coarse_dirt", "coarse_dirt.png", Color{119, 85, 59}, true},
	Cobblestone:         {"cobblestone", "cobblestone.png", Color{127, 127, 127}, true},
	OakPlanks:           {"oak_planks", "oak_planks.png", Color{162, 130, 78}, true},
	SprucePlanks:        {"spruce_planks", "spruce_planks.png", Color{114, 84, 48}, true},
	BirchPlanks:         {"birch_planks", "birch_planks.png", Color{192, 175, 121}, true},
	JunglePlanks:        {"jungle_planks", "jungle_planks.png", Color{160, 115, 80}, true},
	AcaciaPlanks:        {"acacia_planks", "acacia_planks.png", Color{168, 90, 50}, true},
	DarkOakPlanks:       {"dark_oak_planks", "dark_oak_planks.png", Color{66, 43, 20}, true},
	MangrovePlanks:      {"mangrove_planks", "mangrove_planks.png", Color{117, 54, 48}, true},
	CherryPlanks:        {"cherry_planks", "cherry_planks.png", Color{226, 178, 172}, true},
	CrimsonPlanks:       {"crimson_planks", "crimson_planks.png", Color{101, 48, 70}, true},
	WarpedPlanks:        {"warped_planks", "warped_planks.png", Color{43, 104, 99}, true},
	Sand:                {"sand", "sand.png", Color{219, 207, 163}, true},
	RedSand:             {"red_sand", "red_sand.png", Color{190, 102, 33}, true},
	Gravel:              {"gravel", "gravel.png", Color{131, 127, 126}, true},
	Clay:                {"clay", "clay.png", Color{160, 166, 179}, true},
	Mud:                 {"mud", "mud.png", Color{60, 57, 61}, true},
	PackedMud:           {"packed_mud", "packed_mud.png", Color{142, 106, 79}, true},
	MudBricks:           {"mud_bricks", "mud_bricks.png", Color{137, 104, 79}, true},
	MossBlock:           {"moss_block", "moss_block.png", Color{89, 109, 45}, true},
	Bricks:              {"bricks", "bricks.png", Color{150, 97, 83}, true},
	Sandstone:           {"sandstone", "sandstone.png", Color{216, 203, 155}, true},
	RedSandstone:        {"red_sandstone", "red_sandstone.png", Color{186, 99, 29}, true},
	Terracotta:          {"terracotta", "terracotta.png", Color{152, 94, 67}, true},
	SnowBlock:           {"snow_block", "snow_block.png", Color{249, 254, 254}, true},
	Netherrack:          {"netherrack", "netherrack.png", Color{97, 38, 38}, true},
	NetherBricks:        {"nether_bricks", "nether_bricks.png", Color{44, 21, 26}, true},
	RedNetherBricks:     {"red_nether_bricks", "red_nether_bricks.png", Color{69, 7, 9}, true},
	NetherWartBlock:     {"nether_wart_block", "nether_wart_block.png", Color{114, 2, 2}, true},
	WarpedWartBlock:     {"warped_wart_block", "warped_wart_block.png", Color{22, 119, 121}, true},
	SoulSand:            {"soul_sand", "soul_sand.png", Color{81, 62, 50}, true},
	Glowstone:           {"glowstone", "glowstone.png", Color{171, 131, 84}, true},
	Shroomlight:         {"shroomlight", "shroomlight.png", Color{240, 146, 70}, true},
	Blackstone:          {"blackstone", "blackstone.png", Color{42, 36, 41}, true},
	Obsidian:            {"obsidian", "obsidian.png", Color{15, 10, 24}, true},
	EndStone:            {"end_stone", "end_stone.png", Color{219, 222, 158}, true},
	PurpurBlock:         {"purpur_block", "purpur_block.png", Color{169, 125, 169}, true},
	Prismarine:          {"prismarine", "prismarine.png", Color{99, 156, 151}, true},
	PrismarineBricks:    {"prismarine_bricks", "prismarine_bricks.png", Color{99, 171, 158}, true},
	DarkPrismarine:      {"dark_prismarine", "dark_prismarine.png", Color{51, 91, 75}, true},
	SeaLantern:          {"sea_lantern", "sea_lantern.png", Color{172, 199, 190}, true},
	AmethystBlock:       {"amethyst_block", "amethyst_block.png", Color{133, 97, 191}, true},
	HoneycombBlock:      {"honeycomb_block", "honeycomb_block.png", Color{229, 148, 29}, true},
	CoalBlock:           {"coal_block", "coal_block.png", Color{16, 15, 15}, true},
	IronBlock:           {"iron_block", "iron_block.png", Color{220, 220, 220}, true},
	GoldBlock:           {"gold_block", "gold_block.png", Color{246, 208, 61}, true},
	RedstoneBlock:       {"redstone_block", "redstone_block.png", Color{175, 24, 5}, true},
	EmeraldBlock:        {"emerald_block", "emerald_block.png", Color{42, 203, 87}, true},
	LapisBlock:          {"lapis_block", "lapis_block.png", Color{30, 67, 140}, true},
	DiamondBlock:        {"diamond_block", "diamond_block.png", Color{98, 237, 228}, true},
	CopperBlock:         {"copper_block", "copper_block.png", Color{192, 107, 79}, true},
	OxidizedCopper:      {"oxidized_copper", "oxidized_copper.png", Color{82, 162, 132}, true},
	RawIronBlock:        {"raw_iron_block", "raw_iron_block.png", Color{166, 135, 107}, true},
	RawGoldBlock:        {"raw_gold_block", "raw_gold_block.png", Color{221, 169, 46}, true},
	RawCopperBlock:      {"raw_copper_block", "raw_copper_block.png", Color{154, 105, 79}, true},
	WhiteWool:           {"white_wool", "white_wool.png", Color{233, 236, 236}, true},
	OrangeWool:          {"orange_wool", "orange_wool.png", Color{240, 118, 19}, true},
	MagentaWool:         {"magenta_wool", "magenta_wool.png", Color{189, 68, 179}, true},
	LightBlueWool:       {"light_blue_wool", "light_blue_wool.png", Color{58, 175, 217}, true},
	YellowWool:          {"yellow_wool", "yellow_wool.png", Color{248, 197, 39}, true},
	LimeWool:            {"lime_wool", "lime_wool.png", Color{112, 185, 25}, true},
	PinkWool:            {"pink_wool", "pink_wool.png", Color{237, 141, 172}, true},
	GrayWool:            {"gray_wool", "gray_wool.png", Color{62, 68, 71}, true},
	LightGrayWool:       {"light_gray_wool", "light_gray_wool.png", Color{142, 142, 134}, true},
	CyanWool:            {"cyan_wool", "cyan_wool.png", Color{21, 137, 145}, true},
	PurpleWool:          {"purple_wool", "purple_wool.png", Color{121, 42, 172}, true},
	BlueWool:            {"blue_wool", "blue_wool.png", Color{53, 57, 157}, true},
	BrownWool:           {"brown_wool", "brown_wool.png", Color{114, 71, 40}, true},
	GreenWool:           {"green_wool", "green_wool.png", Color{84, 109, 27}, true},
	RedWool:             {"red_wool", "red_wool.png", Color{160, 39, 34}, true},
	BlackWool:           {"black_wool", "black_wool.png", Color{20, 21, 25}, true},
	WhiteConcrete:       {"white_concrete", "white_concrete.png", Color{207, 213, 214}, true},
	OrangeConcrete:      {"orange_concrete", "orange_concrete.png", Color{224, 97, 0}, true},
	MagentaConcrete:     {"magenta_concrete", "magenta_concrete.png", Color{169, 48, 159}, true},
	LightBlueConcrete:   {"light_blue_concrete", "light_blue_concrete.png", Color{35, 137, 198}, true},
	YellowConcrete:      {"yellow_concrete", "yellow_concrete.png", Color{240, 175, 21}, true},
	LimeConcrete:        {"lime_concrete", "lime_concrete.png", Color{94, 168, 24}, true},
	PinkConcrete:        {"pink_concrete", "pink_concrete.png", Color{213, 101, 142}, true},
	GrayConcrete:        {"gray_concrete", "gray_concrete.png", Color{54, 57, 61}, true},
	LightGrayConcrete:   {"light_gray_concrete", "light_gray_concrete.png", Color{125, 125, 115}, true},
	CyanConcrete:        {"cyan_concrete", "cyan_concrete.png", Color{21, 119, 136}, true},
	PurpleConcrete:      {"purple_concrete", "purple_concrete.png", Color{100, 31, 156}, true},
	BlueConcrete:        {"blue_concrete", "blue_concrete.png", Color{44, 46, 143}, true},
	BrownConcrete:       {"brown_concrete", "brown_concrete.png", Color{96, 59, 31}, true},
	GreenConcrete:       {"green_concrete", "green_concrete.png", Color{73, 91, 36}, true},
	RedConcrete:         {"red_concrete", "red_concrete.png", Color{142, 32, 32}, true},
	BlackConcrete:       {"black_concrete", "black_concrete.png", Color{8, 10, 15}, true},
	WhiteTerracotta:     {"white_terracotta", "white_terracotta.png", Color{209, 178, 161}, true},
	OrangeTerracotta:    {"orange_terracotta", "orange_terracotta.png", Color{161, 83, 37}, true},
	MagentaTerracotta:   {"magenta_terracotta", "magenta_terracotta.png", Color{149, 88, 108}, true},
	LightBlueTerracotta: {"light_blue_terracotta", "light_blue_terracotta.png", Color{113, 108, 137}, true},
	YellowTerracotta:    {"yellow_terracotta", "yellow_terracotta.png", Color{186, 133, 35}, true},
	LimeTerracotta:      {"lime_terracotta", "lime_terracotta.png", Color{103, 117, 52}, true},
	PinkTerracotta:      {"pink_terracotta", "pink_terracotta.png", Color{161, 78, 78}, true},
	GrayTerracotta:      {"gray_terracotta", "gray_terracotta.png", Color{57, 42, 35}, true},
	LightGrayTerracotta: {"light_gray_terracotta", "light_gray_terracotta.png", Color{135, 106, 97}, true},
	CyanTerracotta:      {"cyan_terracotta", "cyan_terracotta.png", Color{86, 91, 91}, true},
	PurpleTerracotta:    {"purple_terracotta", "purple_terracotta.png", Color{118, 70, 86}, true},
	BlueTerracotta:      {"blue_terracotta", "blue_terracotta.png", Color{74, 59, 91}, true},
	BrownTerracotta:     {"brown_terracotta", "brown_terracotta.png", Color{77, 51, 35}, true},
	GreenTerracotta:     {"green_terracotta", "green_terracotta.png", Color{76, 83, 42}, true},
	RedTerracotta:       {"red_terracotta", "red_terracotta.png", Color{143, 61, 46}, true},
	BlackTerracotta:     {"black_terracotta", "black_terracotta.png", Color{37, 22, 16}, true},
}
