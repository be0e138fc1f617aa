package geom

// Precomputed origin-centered circles for common radii. Each table is
// element-for-element identical to the dynamic generator output for the
// same radius, kept as package tables so hot paths skip the per-call work.

// Circle5 is the origin-centered output of Circle(Pt(0, 0), 5).
var Circle5 = []Point{
	{5, 0}, {5, -1}, {5, -2}, {4, -3}, {3, -4}, {2, -5}, {1, -5}, {0, -5},
	{-1, -5}, {-2, -5}, {-3, -4}, {-4, -3}, {-5, -2}, {-5, -1}, {-5, 0}, {-5, 1},
	{-5, 2}, {-4, 3}, {-3, 4}, {-2, 5}, {-1, 5}, {0, 5}, {1, 5}, {2, 5},
	{3, 4}, {4, 3}, {5, 2}, {5, 1},
}

// Circle7 is the origin-centered output of Circle(Pt(0, 0), 7).
var Circle7 = []Point{
	{7, 0}, {7, -1}, {7, -2}, {6, -3}, {6, -4}, {5, -5}, {4, -6}, {3, -6},
	{2, -7}, {1, -7}, {0, -7}, {-1, -7}, {-2, -7}, {-3, -6}, {-4, -6}, {-5, -5},
	{-6, -4}, {-6, -3}, {-7, -2}, {-7, -1}, {-7, 0}, {-7, 1}, {-7, 2}, {-6, 3},
	{-6, 4}, {-5, 5}, {-4, 6}, {-3, 6}, {-2, 7}, {-1, 7}, {0, 7}, {1, 7},
	{2, 7}, {3, 6}, {4, 6}, {5, 5}, {6, 4}, {6, 3}, {7, 2}, {7, 1},
}

// Circle9 is the origin-centered output of Circle(Pt(0, 0), 9).
var Circle9 = []Point{
	{9, 0}, {9, -1}, {9, -2}, {8, -3}, {8, -4}, {7, -5}, {7, -6}, {6, -7},
	{5, -7}, {4, -8}, {3, -8}, {2, -9}, {1, -9}, {0, -9}, {-1, -9}, {-2, -9},
	{-3, -8}, {-4, -8}, {-5, -7}, {-6, -7}, {-7, -6}, {-7, -5}, {-8, -4}, {-8, -3},
	{-9, -2}, {-9, -1}, {-9, 0}, {-9, 1}, {-9, 2}, {-8, 3}, {-8, 4}, {-7, 5},
	{-7, 6}, {-6, 7}, {-5, 7}, {-4, 8}, {-3, 8}, {-2, 9}, {-1, 9}, {0, 9},
	{1, 9}, {2, 9}, {3, 8}, {4, 8}, {5, 7}, {6, 7}, {7, 6}, {7, 5},
	{8, 4}, {8, 3}, {9, 2}, {9, 1},
}

// Circle11 is the origin-centered output of Circle(Pt(0, 0), 11).
var Circle11 = []Point{
	{11, 0}, {11, -1}, {11, -2}, {11, -3}, {10, -4}, {10, -5}, {9, -6}, {8, -7},
	{8, -8}, {7, -8}, {6, -9}, {5, -10}, {4, -10}, {3, -11}, {2, -11}, {1, -11},
	{0, -11}, {-1, -11}, {-2, -11}, {-3, -11}, {-4, -10}, {-5, -10}, {-6, -9}, {-7, -8},
	{-8, -8}, {-8, -7}, {-9, -6}, {-10, -5}, {-10, -4}, {-11, -3}, {-11, -2}, {-11, -1},
	{-11, 0}, {-11, 1}, {-11, 2}, {-11, 3}, {-10, 4}, {-10, 5}, {-9, 6}, {-8, 7},
	{-8, 8}, {-7, 8}, {-6, 9}, {-5, 10}, {-4, 10}, {-3, 11}, {-2, 11}, {-1, 11},
	{0, 11}, {1, 11}, {2, 11}, {3, 11}, {4, 10}, {5, 10}, {6, 9}, {7, 8},
	{8, 8}, {8, 7}, {9, 6}, {10, 5}, {10, 4}, {11, 3}, {11, 2}, {11, 1},
}

// Circle13 is the origin-centered output of Circle(Pt(0, 0), 13).
var Circle13 = []Point{
	{13, 0}, {13, -1}, {13, -2}, {13, -3}, {12, -4}, {12, -5}, {12, -6}, {11, -7},
	{10, -8}, {9, -9}, {8, -10}, {7, -11}, {6, -12}, {5, -12}, {4, -12}, {3, -13},
	{2, -13}, {1, -13}, {0, -13}, {-1, -13}, {-2, -13}, {-3, -13}, {-4, -12}, {-5, -12},
	{-6, -12}, {-7, -11}, {-8, -10}, {-9, -9}, {-10, -8}, {-11, -7}, {-12, -6}, {-12, -5},
	{-12, -4}, {-13, -3}, {-13, -2}, {-13, -1}, {-13, 0}, {-13, 1}, {-13, 2}, {-13, 3},
	{-12, 4}, {-12, 5}, {-12, 6}, {-11, 7}, {-10, 8}, {-9, 9}, {-8, 10}, {-7, 11},
	{-6, 12}, {-5, 12}, {-4, 12}, {-3, 13}, {-2, 13}, {-1, 13}, {0, 13}, {1, 13},
	{2, 13}, {3, 13}, {4, 12}, {5, 12}, {6, 12}, {7, 11}, {8, 10}, {9, 9},
	{10, 8}, {11, 7}, {12, 6}, {12, 5}, {12, 4}, {13, 3}, {13, 2}, {13, 1},
}

