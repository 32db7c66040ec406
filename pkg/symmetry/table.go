package symmetry

// spaceGroupTable lists the 230 space group types in their standard settings.
var spaceGroupTable = []spaceGroupEntry{
	{1, "P 1", "1", nil},
	{2, "P -1", "-1", nil},
	{3, "P 1 2 1", "2", []string{"P 2"}},
	{4, "P 1 21 1", "2", []string{"P 21"}},
	{5, "C 1 2 1", "2", []string{"C 2"}},
	{6, "P 1 m 1", "m", []string{"P m"}},
	{7, "P 1 c 1", "m", []string{"P c"}},
	{8, "C 1 m 1", "m", []string{"C m"}},
	{9, "C 1 c 1", "m", []string{"C c"}},
	{10, "P 1 2/m 1", "2/m", []string{"P 2/m"}},
	{11, "P 1 21/m 1", "2/m", []string{"P 21/m"}},
	{12, "C 1 2/m 1", "2/m", []string{"C 2/m"}},
	{13, "P 1 2/c 1", "2/m", []string{"P 2/c"}},
	{14, "P 1 21/c 1", "2/m", []string{"P 21/c"}},
	{15, "C 1 2/c 1", "2/m", []string{"C 2/c"}},
	{16, "P 2 2 2", "222", nil},
	{17, "P 2 2 21", "222", nil},
	{18, "P 21 21 2", "222", nil},
	{19, "P 21 21 21", "222", nil},
	{20, "C 2 2 21", "222", nil},
	{21, "C 2 2 2", "222", nil},
	{22, "F 2 2 2", "222", nil},
	{23, "I 2 2 2", "222", nil},
	{24, "I 21 21 21", "222", nil},
	{25, "P m m 2", "mm2", nil},
	{26, "P m c 21", "mm2", nil},
	{27, "P c c 2", "mm2", nil},
	{28, "P m a 2", "mm2", nil},
	{29, "P c a 21", "mm2", nil},
	{30, "P n c 2", "mm2", nil},
	{31, "P m n 21", "mm2", nil},
	{32, "P b a 2", "mm2", nil},
	{33, "P n a 21", "mm2", nil},
	{34, "P n n 2", "mm2", nil},
	{35, "C m m 2", "mm2", nil},
	{36, "C m c 21", "mm2", nil},
	{37, "C c c 2", "mm2", nil},
	{38, "A m m 2", "mm2", nil},
	{39, "A e m 2", "mm2", []string{"A b m 2"}},
	{40, "A m a 2", "mm2", nil},
	{41, "A e a 2", "mm2", []string{"A b a 2"}},
	{42, "F m m 2", "mm2", nil},
	{43, "F d d 2", "mm2", nil},
	{44, "I m m 2", "mm2", nil},
	{45, "I b a 2", "mm2", nil},
	{46, "I m a 2", "mm2", nil},
	{47, "P m m m", "mmm", nil},
	{48, "P n n n", "mmm", nil},
	{49, "P c c m", "mmm", nil},
	{50, "P b a n", "mmm", nil},
	{51, "P m m a", "mmm", nil},
	{52, "P n n a", "mmm", nil},
	{53, "P m n a", "mmm", nil},
	{54, "P c c a", "mmm", nil},
	{55, "P b a m", "mmm", nil},
	{56, "P c c n", "mmm", nil},
	{57, "P b c m", "mmm", nil},
	{58, "P n n m", "mmm", nil},
	{59, "P m m n", "mmm", nil},
	{60, "P b c n", "mmm", nil},
	{61, "P b c a", "mmm", nil},
	{62, "P n m a", "mmm", nil},
	{63, "C m c m", "mmm", nil},
	{64, "C m c e", "mmm", []string{"C m c a"}},
	{65, "C m m m", "mmm", nil},
	{66, "C c c m", "mmm", nil},
	{67, "C m m e", "mmm", []string{"C m m a"}},
	{68, "C c c e", "mmm", []string{"C c c a"}},
	{69, "F m m m", "mmm", nil},
	{70, "F d d d", "mmm", nil},
	{71, "I m m m", "mmm", nil},
	{72, "I b a m", "mmm", nil},
	{73, "I b c a", "mmm", nil},
	{74, "I m m a", "mmm", nil},
	{75, "P 4", "4", nil},
	{76, "P 41", "4", nil},
	{77, "P 42", "4", nil},
	{78, "P 43", "4", nil},
	{79, "I 4", "4", nil},
	{80, "I 41", "4", nil},
	{81, "P -4", "-4", nil},
	{82, "I -4", "-4", nil},
	{83, "P 4/m", "4/m", nil},
	{84, "P 42/m", "4/m", nil},
	{85, "P 4/n", "4/m", nil},
	{86, "P 42/n", "4/m", nil},
	{87, "I 4/m", "4/m", nil},
	{88, "I 41/a", "4/m", nil},
	{89, "P 4 2 2", "422", nil},
	{90, "P 4 21 2", "422", nil},
	{91, "P 41 2 2", "422", nil},
	{92, "P 41 21 2", "422", nil},
	{93, "P 42 2 2", "422", nil},
	{94, "P 42 21 2", "422", nil},
	{95, "P 43 2 2", "422", nil},
	{96, "P 43 21 2", "422", nil},
	{97, "I 4 2 2", "422", nil},
	{98, "I 41 2 2", "422", nil},
	{99, "P 4 m m", "4mm", nil},
	{100, "P 4 b m", "4mm", nil},
	{101, "P 42 c m", "4mm", nil},
	{102, "P 42 n m", "4mm", nil},
	{103, "P 4 c c", "4mm", nil},
	{104, "P 4 n c", "4mm", nil},
	{105, "P 42 m c", "4mm", nil},
	{106, "P 42 b c", "4mm", nil},
	{107, "I 4 m m", "4mm", nil},
	{108, "I 4 c m", "4mm", nil},
	{109, "I 41 m d", "4mm", nil},
	{110, "I 41 c d", "4mm", nil},
	{111, "P -4 2 m", "-42m", nil},
	{112, "P -4 2 c", "-42m", nil},
	{113, "P -4 21 m", "-42m", nil},
	{114, "P -4 21 c", "-42m", nil},
	{115, "P -4 m 2", "-4m2", nil},
	{116, "P -4 c 2", "-4m2", nil},
	{117, "P -4 b 2", "-4m2", nil},
	{118, "P -4 n 2", "-4m2", nil},
	{119, "I -4 m 2", "-4m2", nil},
	{120, "I -4 c 2", "-4m2", nil},
	{121, "I -4 2 m", "-42m", nil},
	{122, "I -4 2 d", "-42m", nil},
	{123, "P 4/m m m", "4/mmm", nil},
	{124, "P 4/m c c", "4/mmm", nil},
	{125, "P 4/n b m", "4/mmm", nil},
	{126, "P 4/n n c", "4/mmm", nil},
	{127, "P 4/m b m", "4/mmm", nil},
	{128, "P 4/m n c", "4/mmm", nil},
	{129, "P 4/n m m", "4/mmm", nil},
	{130, "P 4/n c c", "4/mmm", nil},
	{131, "P 42/m m c", "4/mmm", nil},
	{132, "P 42/m c m", "4/mmm", nil},
	{133, "P 42/n b c", "4/mmm", nil},
	{134, "P 42/n n m", "4/mmm", nil},
	{135, "P 42/m b c", "4/mmm", nil},
	{136, "P 42/m n m", "4/mmm", nil},
	{137, "P 42/n m c", "4/mmm", nil},
	{138, "P 42/n c m", "4/mmm", nil},
	{139, "I 4/m m m", "4/mmm", nil},
	{140, "I 4/m c m", "4/mmm", nil},
	{141, "I 41/a m d", "4/mmm", nil},
	{142, "I 41/a c d", "4/mmm", nil},
	{143, "P 3", "3", nil},
	{144, "P 31", "3", nil},
	{145, "P 32", "3", nil},
	{146, "R 3 :H", "3", nil},
	{147, "P -3", "-3", nil},
	{148, "R -3 :H", "-3", nil},
	{149, "P 3 1 2", "312", nil},
	{150, "P 3 2 1", "321", nil},
	{151, "P 31 1 2", "312", nil},
	{152, "P 31 2 1", "321", nil},
	{153, "P 32 1 2", "312", nil},
	{154, "P 32 2 1", "321", nil},
	{155, "R 3 2 :H", "321", nil},
	{156, "P 3 m 1", "3m1", nil},
	{157, "P 3 1 m", "31m", nil},
	{158, "P 3 c 1", "3m1", nil},
	{159, "P 3 1 c", "31m", nil},
	{160, "R 3 m :H", "3m1", nil},
	{161, "R 3 c :H", "3m1", nil},
	{162, "P -3 1 m", "-31m", nil},
	{163, "P -3 1 c", "-31m", nil},
	{164, "P -3 m 1", "-3m1", nil},
	{165, "P -3 c 1", "-3m1", nil},
	{166, "R -3 m :H", "-3m1", nil},
	{167, "R -3 c :H", "-3m1", nil},
	{168, "P 6", "6", nil},
	{169, "P 61", "6", nil},
	{170, "P 65", "6", nil},
	{171, "P 62", "6", nil},
	{172, "P 64", "6", nil},
	{173, "P 63", "6", nil},
	{174, "P -6", "-6", nil},
	{175, "P 6/m", "6/m", nil},
	{176, "P 63/m", "6/m", nil},
	{177, "P 6 2 2", "622", nil},
	{178, "P 61 2 2", "622", nil},
	{179, "P 65 2 2", "622", nil},
	{180, "P 62 2 2", "622", nil},
	{181, "P 64 2 2", "622", nil},
	{182, "P 63 2 2", "622", nil},
	{183, "P 6 m m", "6mm", nil},
	{184, "P 6 c c", "6mm", nil},
	{185, "P 63 c m", "6mm", nil},
	{186, "P 63 m c", "6mm", nil},
	{187, "P -6 m 2", "-6m2", nil},
	{188, "P -6 c 2", "-6m2", nil},
	{189, "P -6 2 m", "-62m", nil},
	{190, "P -6 2 c", "-62m", nil},
	{191, "P 6/m m m", "6/mmm", nil},
	{192, "P 6/m c c", "6/mmm", nil},
	{193, "P 63/m c m", "6/mmm", nil},
	{194, "P 63/m m c", "6/mmm", nil},
	{195, "P 2 3", "23", nil},
	{196, "F 2 3", "23", nil},
	{197, "I 2 3", "23", nil},
	{198, "P 21 3", "23", nil},
	{199, "I 21 3", "23", nil},
	{200, "P m -3", "m-3", nil},
	{201, "P n -3", "m-3", nil},
	{202, "F m -3", "m-3", nil},
	{203, "F d -3", "m-3", nil},
	{204, "I m -3", "m-3", nil},
	{205, "P a -3", "m-3", nil},
	{206, "I a -3", "m-3", nil},
	{207, "P 4 3 2", "432", nil},
	{208, "P 42 3 2", "432", nil},
	{209, "F 4 3 2", "432", nil},
	{210, "F 41 3 2", "432", nil},
	{211, "I 4 3 2", "432", nil},
	{212, "P 43 3 2", "432", nil},
	{213, "P 41 3 2", "432", nil},
	{214, "I 41 3 2", "432", nil},
	{215, "P -4 3 m", "-43m", nil},
	{216, "F -4 3 m", "-43m", nil},
	{217, "I -4 3 m", "-43m", nil},
	{218, "P -4 3 n", "-43m", nil},
	{219, "F -4 3 c", "-43m", nil},
	{220, "I -4 3 d", "-43m", nil},
	{221, "P m -3 m", "m-3m", nil},
	{222, "P n -3 n", "m-3m", nil},
	{223, "P m -3 n", "m-3m", nil},
	{224, "P n -3 m", "m-3m", nil},
	{225, "F m -3 m", "m-3m", nil},
	{226, "F m -3 c", "m-3m", nil},
	{227, "F d -3 m", "m-3m", nil},
	{228, "F d -3 c", "m-3m", nil},
	{229, "I m -3 m", "m-3m", nil},
	{230, "I a -3 d", "m-3m", nil},
}
